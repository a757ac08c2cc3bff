// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults and functional options for the
// pseudoinverse. This file defines:
//   - documented defaults (constants),
//   - PinvOption / pinvOptions (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherPinvOptions helper that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultRCond is the relative cutoff for small singular values in Pinv:
	// σ ≤ DefaultRCond·σmax is treated as zero. Tables generated with other
	// cutoffs differ in rank-deficient directions.
	DefaultRCond = 1e-15
)

// PinvOption configures Pinv.
type PinvOption func(*pinvOptions)

// pinvOptions holds resolved Pinv settings.
type pinvOptions struct {
	rcond float64 // relative singular-value cutoff, in [0, 1)
}

// WithRCond sets the relative singular-value cutoff used by Pinv.
// Panics if rcond is negative, ≥ 1, NaN or Inf (programmer error).
func WithRCond(rcond float64) PinvOption {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 || rcond >= 1 {
		panic(fmt.Sprintf("matrix: WithRCond(%g): must be in [0, 1)", rcond))
	}

	return func(o *pinvOptions) { o.rcond = rcond }
}

// gatherPinvOptions applies opts over the defaults in order; later options win.
func gatherPinvOptions(opts ...PinvOption) pinvOptions {
	o := pinvOptions{rcond: DefaultRCond}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
