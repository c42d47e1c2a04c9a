package order

import (
	"crypto/rand"
	"fmt"
	"time"
)

const (
	orderNumberAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberSuffixLength = 6
)

// NewOrderNumber returns a human-readable candidate in the form
// ORD-YYYYMMDD-XXXXXX. Uniqueness is the caller's responsibility: the
// service checks for collisions and regenerates.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, orderNumberSuffixLength)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; fall back to a time-derived suffix rather than panic.
		nano := now.UnixNano()
		for i := range suffix {
			suffix[i] = orderNumberAlphabet[nano%int64(len(orderNumberAlphabet))]
			nano /= int64(len(orderNumberAlphabet))
		}
	} else {
		for i, b := range suffix {
			suffix[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
		}
	}

	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), string(suffix))
}
