package auth

import (
	"testing"
	"time"

	domainerrors "courierd/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func courierToken(t *testing.T, subject string, expiresAt time.Time) string {
	claims := jwt.MapClaims{"sub": subject}
	if !expiresAt.IsZero() {
		claims["exp"] = jwt.NewNumericDate(expiresAt)
	}

	return signedToken(t, claims)
}

func TestCredentialStore_SetToken_ExtractsIdentity(t *testing.T) {
	store, err := NewCredentialStore("")
	require.NoError(t, err)

	token := courierToken(t, "courier-42", time.Now().Add(time.Hour))
	require.NoError(t, store.SetToken(token))

	got, err := store.BearerToken()
	require.NoError(t, err)
	assert.Equal(t, token, got)

	courierID, err := store.CourierID()
	require.NoError(t, err)
	assert.Equal(t, "courier-42", courierID)
}

func TestCredentialStore_SetToken_RejectsMalformedToken(t *testing.T) {
	store, err := NewCredentialStore("")
	require.NoError(t, err)

	err = store.SetToken("not-a-jwt")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}

func TestCredentialStore_SetToken_RejectsMissingSubject(t *testing.T) {
	store, err := NewCredentialStore("")
	require.NoError(t, err)

	err = store.SetToken(signedToken(t, jwt.MapClaims{"exp": jwt.NewNumericDate(time.Now().Add(time.Hour))}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}

func TestCredentialStore_BearerToken_ExpiredCredential(t *testing.T) {
	store, err := NewCredentialStore("")
	require.NoError(t, err)
	require.NoError(t, store.SetToken(courierToken(t, "courier-42", time.Now().Add(-time.Minute))))

	_, err = store.BearerToken()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}

func TestCredentialStore_BearerToken_NoCredential(t *testing.T) {
	store, err := NewCredentialStore("")
	require.NoError(t, err)

	_, err = store.BearerToken()
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))

	_, err = store.CourierID()
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}

func TestCredentialStore_TokenWithoutExpiryNeverExpires(t *testing.T) {
	store, err := NewCredentialStore("")
	require.NoError(t, err)
	require.NoError(t, store.SetToken(courierToken(t, "courier-42", time.Time{})))

	_, err = store.BearerToken()
	require.NoError(t, err)
}

func TestCredentialStore_Clear(t *testing.T) {
	store, err := NewCredentialStore(courierToken(t, "courier-42", time.Now().Add(time.Hour)))
	require.NoError(t, err)

	store.Clear()

	_, err = store.BearerToken()
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
	_, err = store.CourierID()
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}

func TestNewCredentialStore_RejectsBadSeedToken(t *testing.T) {
	_, err := NewCredentialStore("garbage")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthentication))
}
