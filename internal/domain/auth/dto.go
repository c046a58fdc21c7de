package auth

import "github.com/rnrran/HUBDAM-KP/internal/pkg/validator"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"-"` // delivered via HttpOnly cookie only
	RefreshTokenExpiresIn int64  `json:"-"`
}

// SessionTrackingRequest carries request metadata stored next to the hashed
// refresh token for session auditing.
type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}
