package response

import (
	"errors"
	"net/http"

	"github.com/rnrran/HUBDAM-KP/internal/domain/auth"
	"github.com/rnrran/HUBDAM-KP/internal/domain/payroll"
	"github.com/rnrran/HUBDAM-KP/internal/domain/user"
	"github.com/rnrran/HUBDAM-KP/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrRegistrationNumberExists):
		Conflict(w, "Registration number already registered")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrInvalidProfilePhoto):
		BadRequest(w, "Profile photo must be a JPEG, PNG or WebP image", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrNegativeNetNotAllowed):
		BadRequest(w, "Deductions exceed gross amount", nil)
	case errors.Is(err, payroll.ErrInvalidWindow):
		BadRequest(w, "Invalid chart window", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
