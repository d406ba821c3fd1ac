// Package orderid generates order identifiers of the form
// SG<YYYYMMDD><8 uppercase hex chars>, e.g. SG20260901A1B2C3D4.
package orderid

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const prefix = "SG"

type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorAt fixes the clock, for tests.
func NewGeneratorAt(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// New draws a fresh identifier. The random component comes from the first
// 8 hex characters of a v4 uuid, uppercased.
func (g *Generator) New() string {
	date := g.now().UTC().Format("20060102")
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + date + random
}
