// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/spendxp/backend/internal/application/adapter"
	domainerror "github.com/spendxp/backend/internal/domain/error"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost   = 12
	minPinLength = 4
	maxPinLength = 8
)

// pinService implements the adapter.PinService interface.
type pinService struct {
	cost int
}

// NewPinService creates a new PIN service instance.
func NewPinService() adapter.PinService {
	return &pinService{cost: bcryptCost}
}

// NewPinServiceWithCost creates a PIN service with a custom bcrypt cost.
// Tests use bcrypt.MinCost to stay fast.
func NewPinServiceWithCost(cost int) adapter.PinService {
	return &pinService{cost: cost}
}

// HashPin hashes a plain text PIN using bcrypt.
func (s *pinService) HashPin(pin string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPin compares a plain text PIN with a hashed PIN.
func (s *pinService) VerifyPin(hashedPin, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPin), []byte(pin))
}

// ValidatePinFormat validates that a PIN is 4 to 8 digits.
func (s *pinService) ValidatePinFormat(pin string) error {
	if len(pin) < minPinLength || len(pin) > maxPinLength {
		return domainerror.ErrInvalidPinFormat
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return domainerror.ErrInvalidPinFormat
		}
	}
	return nil
}
