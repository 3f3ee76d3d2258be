package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors surfaced by the transport. Match with errors.Is.
var (
	// ErrUnavailable means the backend could not be reached or answered
	// with a server-side availability status.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the backend rejected the request's identity:
	// bad credentials or a stale/invalid bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a normalized non-2xx response. Detail always carries a
// human-readable message: the backend's {detail} body when present,
// otherwise a synthesized "HTTP <status>" phrase.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// Unwrap maps well-known statuses onto the package sentinels so callers
// can branch with errors.Is without inspecting raw status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}
	return nil
}

func newStatusError(status int, detail string) *Error {
	if detail == "" {
		detail = fmt.Sprintf("HTTP %d", status)
	}
	return &Error{Status: status, Detail: detail}
}
