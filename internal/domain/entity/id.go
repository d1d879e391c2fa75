package entity

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns prefix followed by the first eight characters of a random
// UUID in upper case, e.g. "APP-1F3A9C0B".
func NewID(prefix string) string {
	return prefix + strings.ToUpper(uuid.NewString()[:8])
}
