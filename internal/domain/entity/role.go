package entity

import (
	"fmt"
	"strings"
)

// Role represents a user role in the system
type Role string

// Role constants
const (
	RoleStaff  Role = "STAFF"
	RoleDoctor Role = "DOCTOR"
)

// ParseRole maps a stored role name (any case) to a Role.
func ParseRole(name string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(name))) {
	case RoleStaff:
		return RoleStaff, nil
	case RoleDoctor:
		return RoleDoctor, nil
	}
	return "", fmt.Errorf("unknown role %q", name)
}

func (r Role) String() string {
	return string(r)
}
