package id

import "github.com/google/uuid"

// New returns a random (v4) UUID string used as a record identifier.
func New() string {
	return uuid.NewString()
}
