package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// User represents a login identity. Passwords are stored as plain text.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	// EntityID links a DOCTOR user to the Doctor record it acts for. Empty when absent.
	EntityID string `json:"entity_id,omitempty"`
}

// HasEntityID reports whether the user is linked to a Doctor record.
func (u User) HasEntityID() bool {
	return u.EntityID != "" && u.EntityID != "null"
}

// Matches reports an exact, case-sensitive credential match.
func (u User) Matches(username, password string) bool {
	return u.Username == username && u.Password == password
}

// whitespace also matches the vertical tab, which RE2 leaves out of \s.
var whitespace = regexp.MustCompile(`[\t\n\x0B\f\r ]+`)

// DoctorCredentials derives the login provisioned for a newly added doctor.
// The fragment is the three characters following the "DOC-" prefix, so
// ("John Smith", "DOC-SAM12345") yields ("johnsmithSAM", "doctorSAM").
func DoctorCredentials(name, doctorID string) (username, password string) {
	fragment := idFragment(doctorID)
	username = whitespace.ReplaceAllString(strings.ToLower(name), "") + fragment
	password = "doctor" + fragment
	return username, password
}

func idFragment(id string) string {
	const start, end = 4, 7
	if len(id) <= start {
		return ""
	}
	if len(id) < end {
		return id[start:]
	}
	return id[start:end]
}

func (u User) String() string {
	if u.HasEntityID() {
		return fmt.Sprintf("User: %s, Role: %s, Entity ID: %s", u.Username, u.Role, u.EntityID)
	}
	return fmt.Sprintf("User: %s, Role: %s", u.Username, u.Role)
}
