// Package randutil provides random identifiers, weighted selection and
// range-based random values.
package randutil

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// SafeUUID returns a random UUID string. Random UUIDs never embed the
// hardware address of the host.
func SafeUUID() string {
	return uuid.NewString()
}

// Percent returns true with roughly p percent probability. Values at or
// below 0 never return true; values at or above 100 always do.
func Percent(p int) bool {
	if p <= 0 {
		return false
	}
	if p >= 100 {
		return true
	}
	return rand.IntN(100) < p
}
