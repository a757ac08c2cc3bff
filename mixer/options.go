// SPDX-License-Identifier: MIT

package mixer

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/rotormix/matrix"
)

// Option configures Mix and MixAll.
type Option func(*options)

type options struct {
	legacy  bool
	rcond   float64
	workers int
}

// WithLegacyNormalization selects the legacy rescaled mix (false by default).
func WithLegacyNormalization(on bool) Option {
	return func(o *options) { o.legacy = on }
}

// WithRCond sets the relative singular-value cutoff of the pseudoinverse.
// Panics if rcond is outside [0, 1) (see matrix.WithRCond).
func WithRCond(rcond float64) Option {
	_ = matrix.WithRCond(rcond) // validate eagerly

	return func(o *options) { o.rcond = rcond }
}

// WithWorkers bounds the number of geometries MixAll processes at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("mixer: WithWorkers(%d): must be ≥ 1", n))
	}

	return func(o *options) { o.workers = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		rcond:   matrix.DefaultRCond,
		workers: runtime.GOMAXPROCS(0),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
