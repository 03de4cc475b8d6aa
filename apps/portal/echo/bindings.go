package echoportal

import (
	"github.com/trezcool/campusconnect/core"
	"github.com/trezcool/campusconnect/core/user"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Session  user.Session `json:"session"`
		Redirect string       `json:"redirect"`
	}

	// CredentialRow is one line of the demo accounts table shown on the login page.
	CredentialRow struct {
		Role     string `json:"role"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginPage struct {
		Title       string          `json:"title"`
		Credentials []CredentialRow `json:"credentials"`
	}
)

// Validate collapses any missing field into the single login feedback message:
// the form does not report per-field errors.
func (lr *LoginRequest) Validate() error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	if err := core.Validate.Struct(lr); err != nil {
		return errMissingCredentials
	}
	return nil
}
