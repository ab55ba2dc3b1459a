package service

// CredentialStore holds the bearer credential for the authenticated session.
// Login itself happens outside this runtime; the caller layer installs the
// token it obtained and the runtime only reads, inspects and clears it.
type CredentialStore interface {
	// BearerToken returns the current token. It fails with the domain
	// authentication error when no token is present or the token is expired.
	BearerToken() (string, error)

	// CourierID returns the courier identity bound to the credential, used to
	// key location writes.
	CourierID() (string, error)

	// SetToken installs a fresh credential.
	SetToken(token string) error

	// Clear wipes the credential. Called on forced disconnect so the caller
	// layer is pushed through re-authentication.
	Clear()
}
