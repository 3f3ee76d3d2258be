package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/poleforge/poleforge/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates through the session
// manager. Validation and transport errors are printed, not returned as
// failures of the REPL loop.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	creds := models.LoginCredentials{Email: email, Password: string(password)}
	if err := a.session.Login(ctx, creds); err != nil {
		fmt.Println("Login failed:", err.Error())
		return err
	}

	fmt.Println("Welcome back,", a.session.CurrentUser().Name)
	return nil
}

// Signup prompts for account details and creates an account. A
// successful signup leaves the user authenticated immediately.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)

	data := models.SignupData{
		Name:            name,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
	}
	if err := a.session.Signup(ctx, data); err != nil {
		fmt.Println("Signup failed:", err.Error())
		return err
	}

	fmt.Println("Account created. You are now signed in.")
	return nil
}

// Logout tears the session down. It always succeeds locally, even when
// the backend cannot be notified.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the authenticated user.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> (since %s)\n", user.Name, user.Email, user.CreatedAt)
	return nil
}

// ForgotPassword requests a reset link for an email address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.session.ForgotPassword(ctx, models.ForgotPasswordData{Email: email})
	if err != nil {
		fmt.Println("Request failed:", err.Error())
		return err
	}
	fmt.Println(msg)
	if a.config != nil {
		fmt.Printf("Follow the link from the email, or open %s/reset-password and use 'reset' here.\n", a.config.AppOrigin)
	}
	return nil
}

// ResetPassword completes a reset using the token from the emailed link.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter reset token", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	msg, err := a.session.ResetPassword(ctx, models.ResetPasswordData{
		Token:       token,
		NewPassword: string(password),
	})
	if err != nil {
		fmt.Println("Reset failed:", err.Error())
		return err
	}
	fmt.Println(msg)
	return nil
}
