package identity_test

import (
	"encoding/json"
	"testing"

	"caseshare_backend/internal/identity"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"canonical lower case", "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c", nil},
		{"upper case accepted", "F4C2B3B3-6F9E-4A6A-8F2D-7A7C1B5E3C5C", nil},
		{"mixed case accepted", "f4C2b3B3-6f9e-4A6a-8F2d-7a7c1b5e3c5c", nil},
		{"truncated", "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5", identity.ErrInvalidFormat},
		{"too long", "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5cc", identity.ErrInvalidFormat},
		{"missing hyphens", "f4c2b3b36f9e4a6a8f2d7a7c1b5e3c5c", identity.ErrInvalidFormat},
		{"non-hex characters", "z4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c", identity.ErrInvalidFormat},
		{"empty", "", identity.ErrInvalidFormat},
		{"garbage", "not-a-uuid", identity.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := identity.Validate(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid string", func(t *testing.T) {
		id, err := identity.Parse(json.RawMessage(`"f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c"`))
		assert.NoError(t, err)
		assert.Equal(t, "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c", id)
	})

	t.Run("malformed string", func(t *testing.T) {
		_, err := identity.Parse(json.RawMessage(`"f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5"`))
		assert.ErrorIs(t, err, identity.ErrInvalidFormat)
	})

	// Values arriving over the realtime transport can be any JSON type.
	wrongTypes := map[string]string{
		"number":  `42`,
		"boolean": `true`,
		"null":    `null`,
		"array":   `["f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c"]`,
		"object":  `{"id": "f4c2b3b3-6f9e-4a6a-8f2d-7a7c1b5e3c5c"}`,
		"invalid": `{`,
	}
	for name, raw := range wrongTypes {
		t.Run("wrong type "+name, func(t *testing.T) {
			_, err := identity.Parse(json.RawMessage(raw))
			assert.ErrorIs(t, err, identity.ErrWrongType)
		})
	}
}
