package user

import (
	"github.com/rnrran/HUBDAM-KP/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name               string  `json:"name"`
	Email              *string `json:"email,omitempty"`
	Password           string  `json:"password"`
	RegistrationNumber string  `json:"registration_number"`
	Rank               *string `json:"rank,omitempty"`
	Role               string  `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	} else if !validator.MaxLen(r.Name, 255) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at most 255 characters"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if validator.IsEmpty(r.RegistrationNumber) {
		errs = append(errs, validator.ValidationError{Field: "registration_number", Message: "is required"})
	} else if !validator.MaxLen(r.RegistrationNumber, 255) {
		errs = append(errs, validator.ValidationError{Field: "registration_number", Message: "must be at most 255 characters"})
	}
	if r.Rank != nil && !validator.MaxLen(*r.Rank, 255) {
		errs = append(errs, validator.ValidationError{Field: "rank", Message: "must be at most 255 characters"})
	}
	if r.Role == "" {
		r.Role = string(RoleGuest)
	}
	if !IsValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, supervisor, guest"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID                 int64   `json:"-"`
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	Password           *string `json:"password,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	Rank               *string `json:"rank,omitempty"`
	Role               *string `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if r.RegistrationNumber != nil && validator.IsEmpty(*r.RegistrationNumber) {
		errs = append(errs, validator.ValidationError{Field: "registration_number", Message: "must not be empty"})
	}
	if r.Rank != nil && !validator.MaxLen(*r.Rank, 255) {
		errs = append(errs, validator.ValidationError{Field: "rank", Message: "must be at most 255 characters"})
	}
	if r.Role != nil && !IsValidRole(Role(*r.Role)) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, supervisor, guest"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserResponse never carries the password hash or any other credential field.
type UserResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Email              *string `json:"email,omitempty"`
	RegistrationNumber string  `json:"registration_number"`
	Rank               *string `json:"rank,omitempty"`
	Role               string  `json:"role"`
	ProfilePhotoURL    *string `json:"profile_photo_url,omitempty"`
}

// Summary is the subset joined onto payroll responses.
type Summary struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	RegistrationNumber string  `json:"registration_number"`
	Rank               *string `json:"rank,omitempty"`
}

type GeneratedPasswordResponse struct {
	Password string `json:"password"`
}
