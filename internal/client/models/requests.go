package models

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	hasUppercase = regexp.MustCompile(`[A-Z]`)
	hasLowercase = regexp.MustCompile(`[a-z]`)
	hasDigit     = regexp.MustCompile(`\d`)
)

// newPasswordRules are the complexity requirements for freshly chosen
// passwords (signup and reset). Existing passwords on login are only
// required to be non-empty.
func newPasswordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required,
		validation.Length(8, 100),
		validation.Match(hasUppercase).Error("must contain at least one uppercase letter"),
		validation.Match(hasLowercase).Error("must contain at least one lowercase letter"),
		validation.Match(hasDigit).Error("must contain at least one digit"),
	}
}

// stringEquals returns a rule that fails unless the validated value equals
// the captured string. Used for password confirmation.
func stringEquals(expected, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(msg)
		}
		return nil
	}
}

// LoginCredentials is the login form payload.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the credential shape. It returns validation.Errors
// (a field-to-message map) on failure. It does not hit the network.
func (c LoginCredentials) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Email, validation.Required, is.Email),
		validation.Field(&c.Password, validation.Required),
	)
}

// SignupData is the account creation payload. ConfirmPassword is checked
// locally and never sent to the server.
type SignupData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

func (d SignupData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&d.Email, validation.Required, is.Email),
		validation.Field(&d.Password, newPasswordRules()...),
		validation.Field(&d.ConfirmPassword,
			validation.Required,
			validation.By(stringEquals(d.Password, "passwords do not match")),
		),
	)
}

// ForgotPasswordData requests a reset link for the given address.
type ForgotPasswordData struct {
	Email string `json:"email"`
}

func (d ForgotPasswordData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Email, validation.Required, is.Email),
	)
}

// ResetPasswordData completes a password reset using the token from the
// reset link.
type ResetPasswordData struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (d ResetPasswordData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Token, validation.Required),
		validation.Field(&d.NewPassword, newPasswordRules()...),
	)
}
