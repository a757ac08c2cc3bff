// SPDX-License-Identifier: MIT

package mixer

import (
	"sync"

	"github.com/katalvlaran/rotormix/geometry"
)

// Outcome pairs a geometry with its Result or error. Exactly one of Result
// and Err is non-nil.
type Outcome struct {
	Geometry *geometry.Geometry
	Result   *Result
	Err      error
}

// MixAll mixes every geometry with at most WithWorkers of them in flight.
// Outcomes are returned in input order. A failing geometry does not stop
// the others.
func MixAll(geoms []*geometry.Geometry, opts ...Option) []Outcome {
	o := gatherOptions(opts...)
	out := make([]Outcome, len(geoms))
	if len(geoms) == 0 {
		return out
	}
	workers := o.workers
	if workers > len(geoms) {
		workers = len(geoms)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				g := geoms[i]
				out[i].Geometry = g
				if g == nil {
					out[i].Err = ErrNilGeometry
					continue
				}
				out[i].Result, out[i].Err = mix(g, o)
			}
		}()
	}
	for i := range geoms {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out
}
