// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes and verifies stored credentials.
type PasswordService interface {
	// Hash derives a storable hash from a plain text password.
	Hash(password string) (string, error)

	// Compare checks a plain text password against a stored hash.
	Compare(hash, password string) error

	// CheckStrength reports whether a password meets the minimum requirements.
	CheckStrength(password string) error
}
