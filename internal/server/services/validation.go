package services

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// maxPasswordLength is the bcrypt input limit in bytes.
const maxPasswordLength = 72

// RegisterInput carries registration credentials. The password is never stored.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

func (in RegisterInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Password, validation.Required, validation.Length(1, maxPasswordLength)),
	)
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

func (in LoginInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, validation.Length(3, 254)),
		validation.Field(&in.Password, validation.Required, validation.Length(1, maxPasswordLength)),
	)
}
