package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber_Format(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		n := NewOrderNumber(now)
		assert.Regexp(t, `^ORD-20260115-[A-Z0-9]{6}$`, n)
	}
}

func TestNewOrderNumber_Varies(t *testing.T) {
	now := time.Now()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewOrderNumber(now)] = true
	}
	// 36^6 candidates; 50 draws colliding down to a single value would
	// mean the generator is not random at all.
	assert.Greater(t, len(seen), 1)
}
