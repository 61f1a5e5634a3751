package cart

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
)

// Authorize enforces that the caller identified by claim owns the cart of email.
// It returns domain.ErrInvalidEmail for a blank email and domain.ErrNotOwner
// when the claim belongs to someone else.
func Authorize(claim domain.SessionClaim, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidEmail)
	}
	if !claim.Owns(email) {
		return domain.ErrNotOwner
	}
	return nil
}
