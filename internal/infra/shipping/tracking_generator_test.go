package shipping

import (
	"regexp"
	"testing"

	"returnwiz/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingGenerator_Format(t *testing.T) {
	cfg := &config.Config{ReturnPolicy: &config.ReturnPolicyConfig{TrackingPrefix: "RW"}}
	gen := NewTrackingGenerator(cfg)

	pattern := regexp.MustCompile(`^RW-[0-9A-F]{32}$`)
	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, gen.Generate())
	}
}

func TestTrackingGenerator_DefaultPrefix(t *testing.T) {
	gen := NewTrackingGenerator(nil)

	assert.Regexp(t, regexp.MustCompile(`^RW-[0-9A-F]{32}$`), gen.Generate())
}

func TestTrackingGenerator_PairwiseUnique(t *testing.T) {
	cfg := &config.Config{ReturnPolicy: &config.ReturnPolicyConfig{TrackingPrefix: "RW"}}
	gen := NewTrackingGenerator(cfg)

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		number := gen.Generate()
		_, dup := seen[number]
		require.False(t, dup, "duplicate tracking number generated: %s", number)
		seen[number] = struct{}{}
	}
}
