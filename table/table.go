// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/rotormix/mixer"
)

// Sentinel errors.
var (
	// ErrNilResult indicates a nil entry in the result list.
	ErrNilResult = errors.New("table: nil result")

	// ErrDuplicateName indicates two geometries with the same name.
	ErrDuplicateName = errors.New("table: duplicate geometry name")

	// ErrInvalidName indicates a geometry name that is not a C identifier.
	ErrInvalidName = errors.New("table: geometry name is not a valid identifier")

	// ErrShape indicates a mix matrix that is not RotorCount×6.
	ErrShape = errors.New("table: mix matrix has unexpected shape")

	// ErrMixedNormalization indicates raw and normalized mixes in one table.
	ErrMixedNormalization = errors.New("table: raw and normalized mixes mixed")
)

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateName reports ErrInvalidName unless name is usable as a C identifier.
func ValidateName(name string) error {
	if !identRE.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Entry is one geometry of the table.
type Entry struct {
	Index       int    // enum value, position in the table
	Enum        string // enum identifier, upper-cased Name
	Name        string
	Key         string
	Description string
	RotorCount  int
	Rows        [][]float64 // one row per rotor; 4 or 6 columns
}

// Table is the ordered, serializable result of Build.
type Table struct {
	Entries    []Entry
	SixDOF     bool
	Normalized bool
}

// Option configures Build.
type Option func(*options)

type options struct {
	sixDOF bool
}

// WithSixDOF emits full 6-column rows instead of the 4-DOF projection.
func WithSixDOF(on bool) Option {
	return func(o *options) { o.sixDOF = on }
}

// Build projects results, in order, into a Table. Entry i gets enum value i.
//
// Errors:
//   - ErrNilResult, ErrInvalidName, ErrDuplicateName, ErrShape,
//     ErrMixedNormalization, each naming the offending geometry.
func Build(results []*mixer.Result, opts ...Option) (*Table, error) {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	t := &Table{SixDOF: o.sixDOF, Entries: make([]Entry, 0, len(results))}
	seen := make(map[string]int, len(results))
	for i, res := range results {
		if res == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilResult, i)
		}
		name := res.Info.Name
		if err := ValidateName(name); err != nil {
			return nil, err
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateName, name, prev, i)
		}
		seen[name] = i
		if i == 0 {
			t.Normalized = res.Normalized
		} else if res.Normalized != t.Normalized {
			return nil, fmt.Errorf("%w: %q", ErrMixedNormalization, name)
		}

		rows, err := project(res, o.sixDOF)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrShape, name, err)
		}
		t.Entries = append(t.Entries, Entry{
			Index:       i,
			Enum:        strings.ToUpper(name),
			Name:        name,
			Key:         res.Info.Key,
			Description: res.Info.Description,
			RotorCount:  res.RotorCount,
			Rows:        rows,
		})
	}

	return t, nil
}

// project extracts the per-rotor rows of res.B.
func project(res *mixer.Result, sixDOF bool) ([][]float64, error) {
	b := res.B
	if b == nil {
		return nil, errors.New("no mix matrix")
	}
	if b.Cols() != mixer.NumAxes || b.Rows() != res.RotorCount {
		return nil, fmt.Errorf("got %dx%d, want %dx%d", b.Rows(), b.Cols(), res.RotorCount, mixer.NumAxes)
	}
	rows := make([][]float64, b.Rows())
	for i := range rows {
		r, err := b.Row(i)
		if err != nil {
			return nil, err
		}
		if sixDOF {
			rows[i] = r
			continue
		}
		// Upward thrust is positive in 4-DOF tables.
		rows[i] = []float64{r[mixer.Roll], r[mixer.Pitch], r[mixer.Yaw], -r[mixer.Z]}
	}

	return rows, nil
}
