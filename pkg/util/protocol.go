package util

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateProtocol returns the human-facing protocol number handed back to
// the requester: the submission instant as YYYYMMDDHHMMSS plus two random
// digits. Uniqueness is best-effort; the number is a reference for support
// follow-up, not a database key.
func GenerateProtocol(now time.Time) string {
	return fmt.Sprintf("%s%02d", now.Format("20060102150405"), rand.Intn(100))
}
