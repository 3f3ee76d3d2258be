// Package api implements the HTTP client for the PoleForge backend.
// It owns the installed bearer token and normalizes transport and
// application failures into sentinel errors and *Error values.
package api

import (
	"context"

	"github.com/poleforge/poleforge/internal/client/models"
)

// Client is the remote operation surface consumed by the session layer
// and the CLI.
//
// Contract:
//   - SetToken installs (or, with "", clears) the bearer token attached
//     to subsequent requests. Pure mutation, no I/O.
//   - Every call is at-most-once: the transport never retries.
//   - All methods honor context cancellation/timeouts.
type Client interface {
	SetToken(token string)

	Login(ctx context.Context, creds models.LoginCredentials) (*AuthResponse, error)
	Signup(ctx context.Context, data models.SignupData) (*AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	ForgotPassword(ctx context.Context, data models.ForgotPasswordData) (string, error)
	ResetPassword(ctx context.Context, data models.ResetPasswordData) (string, error)
	VerifyToken(ctx context.Context) error

	ListProjects(ctx context.Context) ([]*models.Project, error)
	CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// AuthResponse is the wire shape of a successful login or signup.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}
