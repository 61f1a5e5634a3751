package cart

import (
	"testing"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	claim := domain.SessionClaim{Name: "A", Email: "a@x.com"}

	tests := []struct {
		name    string
		claim   domain.SessionClaim
		email   string
		wantErr error
	}{
		{"owner", claim, "a@x.com", nil},
		{"owner with padding", claim, " a@x.com ", nil},
		{"other user", claim, "b@x.com", domain.ErrNotOwner},
		{"case differs", claim, "A@x.com", domain.ErrNotOwner},
		{"blank email", claim, "   ", domain.ErrInvalidEmail},
		{"claim without email", domain.SessionClaim{Name: "A"}, "a@x.com", domain.ErrNotOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.claim, tt.email)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
