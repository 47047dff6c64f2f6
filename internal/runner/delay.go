package runner

import (
	"math/rand"
	"time"
)

// Default delay bounds in seconds, used to desynchronize repeated runs
// against the target service.
const (
	DefaultMinDelay = 3.0
	DefaultMaxDelay = 10.0
)

// DelayGenerator produces uniformly distributed random delays within a
// fixed bound. Bounds are trusted; they are validated at the config layer.
type DelayGenerator struct {
	min float64
	max float64
}

// NewDelayGenerator creates a generator for delays in [min, max] seconds.
func NewDelayGenerator(min, max float64) *DelayGenerator {
	return &DelayGenerator{min: min, max: max}
}

// Next draws one delay from the generator's range.
func (g *DelayGenerator) Next() time.Duration {
	span := g.max - g.min
	if span <= 0 {
		return time.Duration(g.min * float64(time.Second))
	}
	seconds := g.min + rand.Float64()*span
	return time.Duration(seconds * float64(time.Second))
}
