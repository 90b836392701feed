// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PinService defines the credential service for PIN hashing and verification.
type PinService interface {
	// HashPin hashes a plain text PIN.
	HashPin(pin string) (string, error)

	// VerifyPin compares a plain text PIN with a hashed PIN.
	VerifyPin(hashedPin, pin string) error

	// ValidatePinFormat validates that a PIN is 4 to 8 digits.
	ValidatePinFormat(pin string) error
}
