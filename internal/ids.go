package internal

import (
	"strings"

	"github.com/google/uuid"
)

// NewEventID generates a random event id for payload events that carry none.
// Collision probability is astronomically low, not formally guaranteed zero.
func NewEventID() string {
	return "evt_" + uuidHex()
}

// NewFileSuffix returns a short random token appended to decision file names
// so identical titles on the same date never collide
func NewFileSuffix() string {
	return uuidHex()[:8]
}

func uuidHex() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
