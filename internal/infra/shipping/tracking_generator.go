// Package shipping provides placeholder implementations of the carrier-facing
// services: tracking number generation and return label assets. A real
// carrier integration replaces these behind the same interfaces.
package shipping

import (
	"strings"

	"returnwiz/config"
	"returnwiz/internal/domain/service"

	"github.com/google/uuid"
)

type trackingGenerator struct {
	prefix string
}

// NewTrackingGenerator returns a TrackingNumberGenerator producing values of
// the form PREFIX-<32 hex chars>. The suffix is a random UUID, so collisions
// are negligible; the database constraint on tracking numbers is the final
// guarantee.
func NewTrackingGenerator(cfg *config.Config) service.TrackingNumberGenerator {
	prefix := ""
	if cfg != nil && cfg.ReturnPolicy != nil {
		prefix = cfg.ReturnPolicy.TrackingPrefix
	}
	if prefix == "" {
		prefix = "RW"
	}

	return &trackingGenerator{prefix: prefix}
}

// Generate returns a new placeholder tracking number.
func (g *trackingGenerator) Generate() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))

	return g.prefix + "-" + suffix
}
