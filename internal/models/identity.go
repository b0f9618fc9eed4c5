// Package models defines the data types shared by the onboarding wizard, the
// risk scoring engine and the session store.
package models

import "fmt"

// Role is the kind of actor holding a session.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// ParseRole accepts "patient" or "doctor".
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RolePatient, RoleDoctor:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Identity is the authenticated actor's role-tagged profile. It is created on
// successful login or signup and held by the session store until logout.
type Identity struct {
	// ID is assigned by the identity provider and is opaque to the core.
	ID string

	// DisplayName is shown in greetings and the CLI prompt.
	DisplayName string

	Email string
	Role  Role
}
