// SPDX-License-Identifier: MIT

// Command mixgen generates multirotor mixer tables from geometry files.
//
//	mixgen -d geoms -o mixer_multirotor.generated.h
//	mixgen -f geoms/quad_x.toml geoms/hex_x.toml --normalize --format toml
//
// A geometry that fails to load or mix is logged and skipped; the table is
// still written for the others and the exit status is 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/rotormix/geometry"
	"github.com/katalvlaran/rotormix/matrix"
	"github.com/katalvlaran/rotormix/mixer"
	"github.com/katalvlaran/rotormix/observability"
	"github.com/katalvlaran/rotormix/table"
)

const (
	exitOK      = 0
	exitPartial = 1
	exitUsage   = 2
)

// fileList collects repeated -f values.
type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

type config struct {
	dir             string
	files           fileList
	output          string
	normalize       bool
	sixDOF          bool
	format          string
	metricsTextfile string
	logLevel        string
	workers         int
	rcond           float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("mixgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.dir, "d", "", "directory with geometry files (*.toml)")
	fs.Var(&cfg.files, "f", "geometry file to convert; repeatable, extra arguments are files too (use without -d)")
	fs.StringVar(&cfg.output, "o", "", "output file (default stdout)")
	fs.BoolVar(&cfg.normalize, "normalize", false, "use legacy normalized mixers (compatibility mode)")
	fs.BoolVar(&cfg.sixDOF, "sixdof", false, "emit 6-DOF mixers")
	fs.StringVar(&cfg.format, "format", "header", "output format: header|toml")
	fs.StringVar(&cfg.metricsTextfile, "metrics-textfile", "", "write Prometheus textfile metrics to this path")
	fs.StringVar(&cfg.logLevel, "log-level", "", "log level (default $"+observability.EnvLogLevel+" or info)")
	fs.IntVar(&cfg.workers, "workers", 0, "geometries mixed concurrently (default GOMAXPROCS)")
	fs.Float64Var(&cfg.rcond, "rcond", matrix.DefaultRCond, "relative singular-value cutoff of the pseudoinverse")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.files = append(cfg.files, fs.Args()...)

	switch {
	case cfg.dir == "" && len(cfg.files) == 0:
		return nil, errors.New("one of -d or -f is required")
	case cfg.dir != "" && len(cfg.files) > 0:
		return nil, errors.New("-d and -f are mutually exclusive")
	case cfg.format != "header" && cfg.format != "toml":
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	case cfg.workers < 0:
		return nil, fmt.Errorf("-workers must be ≥ 0, got %d", cfg.workers)
	case !(cfg.rcond >= 0 && cfg.rcond < 1):
		return nil, fmt.Errorf("-rcond must be in [0, 1), got %g", cfg.rcond)
	}
	if cfg.logLevel != "" {
		if _, ok := observability.ParseLevel(cfg.logLevel); !ok {
			return nil, fmt.Errorf("unknown log level %q", cfg.logLevel)
		}
	}

	return cfg, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "mixgen: %v\n", err)
		}
		return exitUsage
	}
	log := observability.NewLogger("mixgen", observability.ResolveLevel(cfg.logLevel), stderr)
	start := time.Now()

	metrics, err := observability.NewMetrics(nil)
	if err != nil {
		log.Error().Err(err).Msg("metrics setup failed")
		return exitPartial
	}

	files := []string(cfg.files)
	if cfg.dir != "" {
		if files, err = geometry.Glob(cfg.dir); err != nil {
			log.Error().Err(err).Str("dir", cfg.dir).Msg("listing geometries failed")
			return exitPartial
		}
		if len(files) == 0 {
			log.Warn().Str("dir", cfg.dir).Msg("no geometry files found")
		}
	}

	failed := false
	geoms := make([]*geometry.Geometry, 0, len(files))
	seen := make(map[string]string, len(files)) // geometry name -> source
	for _, f := range files {
		g, err := geometry.LoadFile(f)
		if err != nil {
			failed = true
			metrics.RecordLoadFailure()
			log.Error().Err(err).Str("source", f).Msg("load failed")
			continue
		}
		// The first geometry claiming a name keeps it.
		if err = table.ValidateName(g.Name()); err == nil {
			if prev, dup := seen[g.Name()]; dup {
				err = fmt.Errorf("%w: %q already defined by %s", table.ErrDuplicateName, g.Name(), prev)
			}
		}
		if err != nil {
			failed = true
			metrics.RecordLoadFailure()
			log.Error().Err(err).Str("geometry", g.Name()).Str("source", f).Msg("geometry skipped")
			continue
		}
		seen[g.Name()] = f
		geoms = append(geoms, g)
	}

	opts := []mixer.Option{
		mixer.WithLegacyNormalization(cfg.normalize),
		mixer.WithRCond(cfg.rcond),
	}
	if cfg.workers > 0 {
		opts = append(opts, mixer.WithWorkers(cfg.workers))
	}
	results := make([]*mixer.Result, 0, len(geoms))
	for _, o := range mixer.MixAll(geoms, opts...) {
		metrics.RecordOutcome(o)
		if o.Err != nil {
			failed = true
			log.Error().Err(o.Err).Str("geometry", o.Geometry.Name()).Str("source", o.Geometry.Source()).Msg("mix failed")
			continue
		}
		logResult(log, o)
		results = append(results, o.Result)
	}

	tbl, err := table.Build(results, table.WithSixDOF(cfg.sixDOF))
	if err != nil {
		log.Error().Err(err).Msg("building table failed")
		return exitPartial
	}
	if err := writeOutput(cfg, tbl, stdout); err != nil {
		log.Error().Err(err).Str("output", cfg.output).Msg("writing output failed")
		return exitPartial
	}
	log.Info().
		Int("geometries", len(tbl.Entries)).
		Str("format", cfg.format).
		Bool("normalized", cfg.normalize).
		Bool("sixdof", cfg.sixDOF).
		Msg("tables written")

	if cfg.metricsTextfile != "" {
		metrics.RecordRun(start, time.Now())
		if err := metrics.WriteTextfile(cfg.metricsTextfile); err != nil {
			log.Error().Err(err).Msg("writing metrics failed")
			failed = true
		}
	}
	if failed {
		return exitPartial
	}

	return exitOK
}

func logResult(log zerolog.Logger, o mixer.Outcome) {
	g := o.Geometry
	log.Debug().
		Str("geometry", g.Name()).
		Str("key", g.Key()).
		Str("source", g.Source()).
		Int("rotors", o.Result.RotorCount).
		Msg("mixed")
	if axes := o.Result.Uncontrollable(); len(axes) > 0 {
		names := make([]string, len(axes))
		for i, ax := range axes {
			names[i] = ax.String()
		}
		log.Debug().
			Str("geometry", g.Name()).
			Strs("axes", names).
			Msg("no authority on axes")
	}
	for _, w := range o.Result.Warnings {
		log.Info().
			Str("geometry", g.Name()).
			Stringer("axis", w.Axis).
			Float64("scale", w.Scale).
			Msg("legacy scale clamped to 1")
	}
}

func writeOutput(cfg *config, tbl *table.Table, stdout io.Writer) (err error) {
	w := stdout
	if cfg.output != "" {
		var f *os.File
		if f, err = os.Create(cfg.output); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if cfg.format == "toml" {
		return table.WriteTOML(w, tbl)
	}

	return table.WriteHeader(w, tbl)
}
