package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/poleforge/poleforge/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the backend configured by baseURL.
//
// The installed token is a single-owner mutable field updated only by the
// session layer. It is not safe for concurrent multi-session use within
// one process; a multi-session client would have to pass the token per
// call instead.
type HTTPClient struct {
	baseURL string
	token   string
	hc      *http.Client
}

// NewHTTPClient builds a client for the given base URL. A zero timeout
// leaves requests bounded only by the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// request performs a single JSON round trip. body (if non-nil) is
// marshalled as the request body; out (if non-nil) receives the decoded
// 2xx response body. No retries.
func (c *HTTPClient) request(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return c.mapError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapError turns a non-2xx response into *Error. The backend reports
// failures as {"detail": "..."}; anything unparsable falls back to a
// generic "HTTP <status>" message so the caller always gets a non-empty
// display string.
func (c *HTTPClient) mapError(resp *http.Response) error {
	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return newStatusError(resp.StatusCode, body.Detail)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.LoginCredentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Signup(ctx context.Context, data models.SignupData) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/signup", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.request(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.request(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, data models.ForgotPasswordData) (string, error) {
	var resp messageResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/forgot-password", data, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, data models.ResetPasswordData) (string, error) {
	var resp messageResponse
	if err := c.request(ctx, http.MethodPost, "/api/auth/reset-password", data, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *HTTPClient) VerifyToken(ctx context.Context) error {
	return c.request(ctx, http.MethodPost, "/api/auth/verify", nil, nil)
}

func (c *HTTPClient) ListProjects(ctx context.Context) ([]*models.Project, error) {
	var projects []*models.Project
	if err := c.request(ctx, http.MethodGet, "/api/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	var p models.Project
	if err := c.request(ctx, http.MethodPost, "/api/projects/", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	if err := c.request(ctx, http.MethodGet, "/api/projects/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id string, in models.ProjectInput) (*models.Project, error) {
	var p models.Project
	if err := c.request(ctx, http.MethodPut, "/api/projects/"+id, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/projects/"+id, nil, nil)
}
