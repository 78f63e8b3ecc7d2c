// Package idgen produces collision-resistant, creation-time-ordered string ids
// of the form prefix_<unix-ms>_<12 hex chars>.
package idgen

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh identifier for the given record prefix ("t", "v", "r").
// The millisecond timestamp gives coarse ordering by creation time; 48 bits of
// randomness keep same-millisecond collisions negligible for bursts of ~1000 ids.
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix())
}

func suffix() string {
	u := uuid.New()
	return hex.EncodeToString(u[:6])
}
