// Package auth provides the bearer-credential store for the authenticated
// session.
package auth

import (
	"strings"
	"sync"
	"time"

	domainerrors "courierd/internal/domain/errors"
	"courierd/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// credentialStore keeps the session bearer token in memory. The token is a
// JWT issued by the dispatch server; the store does not verify its signature
// (only the server can), it just inspects the registered claims to reject
// obviously dead credentials before they hit the wire.
type credentialStore struct {
	mu        sync.RWMutex
	token     string
	courierID string
	expiresAt time.Time
}

// NewCredentialStore creates a credential store, optionally seeded with a
// token from configuration.
func NewCredentialStore(initialToken string) (service.CredentialStore, error) {
	store := &credentialStore{}
	if strings.TrimSpace(initialToken) != "" {
		if err := store.SetToken(initialToken); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// SetToken installs a fresh credential after extracting its identity claims.
func (s *credentialStore) SetToken(token string) error {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return domainerrors.ErrAuthentication.WithDetails("credential is not a valid token")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return domainerrors.ErrAuthentication.WithDetails("credential has no subject")
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.courierID = subject
	s.expiresAt = expiresAt

	return nil
}

// BearerToken returns the current token, rejecting missing or expired ones.
func (s *credentialStore) BearerToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", domainerrors.ErrAuthentication
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", domainerrors.ErrAuthentication.WithDetails("credential expired")
	}

	return s.token, nil
}

// CourierID returns the courier identity bound to the credential.
func (s *credentialStore) CourierID() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.courierID == "" {
		return "", domainerrors.ErrAuthentication
	}

	return s.courierID, nil
}

// Clear wipes the credential.
func (s *credentialStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.courierID = ""
	s.expiresAt = time.Time{}
}
