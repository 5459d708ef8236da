package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// HexSuffix returns the first length hex characters of a random UUID.
// length is capped at 32.
func HexSuffix(length int) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	if length > len(raw) {
		length = len(raw)
	}
	if length < 0 {
		length = 0
	}
	return raw[:length]
}
