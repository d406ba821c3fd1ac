package orderid

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormat(t *testing.T) {
	fixed := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	gen := NewGeneratorAt(func() time.Time { return fixed })

	id := gen.New()

	require.Regexp(t, regexp.MustCompile(`^SG20260901[0-9A-F]{8}$`), id)
}

func TestNewUsesUTCDate(t *testing.T) {
	// 23:30 in UTC+5 is still the previous day in UTC.
	loc := time.FixedZone("UTC+5", 5*3600)
	fixed := time.Date(2026, 9, 2, 3, 30, 0, 0, loc)
	gen := NewGeneratorAt(func() time.Time { return fixed })

	assert.Contains(t, gen.New(), "SG20260901")
}

func TestNewIsUnique(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := gen.New()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
