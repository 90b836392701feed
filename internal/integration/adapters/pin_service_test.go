package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/spendxp/backend/internal/domain/error"
)

func TestPinService_HashAndVerify(t *testing.T) {
	svc := NewPinServiceWithCost(bcrypt.MinCost)

	hash, err := svc.HashPin("1234")
	require.NoError(t, err)
	assert.NotEqual(t, "1234", hash)

	assert.NoError(t, svc.VerifyPin(hash, "1234"))
	assert.Error(t, svc.VerifyPin(hash, "4321"))
}

func TestPinService_ValidatePinFormat(t *testing.T) {
	svc := NewPinService()

	tests := []struct {
		pin   string
		valid bool
	}{
		{"1234", true},
		{"12345678", true},
		{"123", false},
		{"123456789", false},
		{"12a4", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			err := svc.ValidatePinFormat(tt.pin)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domainerror.ErrInvalidPinFormat)
			}
		})
	}
}
