// Package models defines client-side data models used by the PoleForge CLI.
package models

// User is the identity record returned by the backend. It is immutable on
// the client: the server copy always wins over any locally cached one.
type User struct {
	// ID is the opaque stable identifier assigned by the backend
	// (serialized as "ocid" on the wire).
	ID string `json:"ocid"`

	// Email is the unique login address; the backend matches it
	// case-insensitively.
	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// CreatedAt is the account creation timestamp, kept as the string
	// the server sent (the client never parses or compares it).
	CreatedAt string `json:"created_at"`
}

// Session couples a bearer token with the user it authenticates.
// Exactly one session may be active per client; re-login replaces it.
type Session struct {
	Token string
	User  *User
}

// Project is a pole design project owned by the authenticated user.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	EngineerName string `json:"engineer_name"`
	PoleType     string `json:"pole_type"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ProjectInput is the payload for creating or updating a project.
type ProjectInput struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	EngineerName string `json:"engineer_name"`
	PoleType     string `json:"pole_type"`
}
