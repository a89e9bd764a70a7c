// SPDX-License-Identifier: MIT

// Command planargen grows a random planar graph from a wheel by repeated edge
// additions and vertex splits, lays it out with the barycentric embedding and
// writes the drawing as PNG or SVG.
//
// Usage:
//
//	planargen --seed 42 --iterations 120 --out graph.png
//	planargen --format svg --isolation-bias --relax
//
// Without --out the file gets a random two-word name.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/generate"
	"github.com/katalvlaran/planar/geometry"
	"github.com/katalvlaran/planar/render"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// ErrBadFlag reports a flag value outside its domain.
var ErrBadFlag = errors.New("planargen: bad flag value")

type flags struct {
	seed          int64
	iterations    int
	wheelMin      int
	wheelMax      int
	radius        float64
	size          int
	out           string
	format        string
	isolationBias bool
	relax         bool
	check         bool
	debug         bool
	noColor       bool
}

func parseFlags(args []string) (flags, error) {
	var f flags
	app := kingpin.New("planargen", "Grow a random planar graph and draw it.")
	app.Flag("seed", "RNG seed; 0 picks one from the clock.").Default("0").Int64Var(&f.seed)
	app.Flag("iterations", "Number of mutation steps.").Short('n').
		Default(strconv.Itoa(generate.DefaultIterations)).IntVar(&f.iterations)
	app.Flag("wheel-min", "Smallest rim of the initial wheel.").
		Default(strconv.Itoa(generate.DefaultWheelMin)).IntVar(&f.wheelMin)
	app.Flag("wheel-max", "Largest rim of the initial wheel.").
		Default(strconv.Itoa(generate.DefaultWheelMax)).IntVar(&f.wheelMax)
	app.Flag("radius", "Circumradius of the outer face.").
		Default(strconv.FormatFloat(generate.DefaultRadius, 'f', -1, 64)).Float64Var(&f.radius)
	app.Flag("size", "Image width and height in pixels.").
		Default(strconv.Itoa(render.DefaultWidth)).IntVar(&f.size)
	app.Flag("out", "Output file; the extension .png or .svg overrides --format.").Short('o').StringVar(&f.out)
	app.Flag("format", "Output format.").Default("png").EnumVar(&f.format, "png", "svg")
	app.Flag("isolation-bias", "Start new edges at the most isolated vertex.").BoolVar(&f.isolationBias)
	app.Flag("relax", "Re-run the layout after every split.").BoolVar(&f.relax)
	app.Flag("check", "Audit the graph invariants after every step.").BoolVar(&f.check)
	app.Flag("debug", "Log every mutation.").BoolVar(&f.debug)
	app.Flag("no-color", "Plain summary output.").BoolVar(&f.noColor)

	if _, err := app.Parse(args); err != nil {
		return f, err
	}

	return f, f.validate()
}

func (f flags) validate() error {
	switch {
	case f.iterations < 0:
		return fmt.Errorf("--iterations=%d: %w", f.iterations, ErrBadFlag)
	case f.wheelMin < 3 || f.wheelMax < f.wheelMin:
		return fmt.Errorf("--wheel-min=%d --wheel-max=%d: %w", f.wheelMin, f.wheelMax, ErrBadFlag)
	case !(f.radius > 0):
		return fmt.Errorf("--radius=%g: %w", f.radius, ErrBadFlag)
	case f.size <= 0:
		return fmt.Errorf("--size=%d: %w", f.size, ErrBadFlag)
	}

	return nil
}

// outputPath resolves the file name and format.
func (f flags) outputPath() (string, string) {
	if f.out == "" {
		return petname.Generate(2, "-") + "." + f.format, f.format
	}
	switch strings.ToLower(filepath.Ext(f.out)) {
	case ".svg":
		return f.out, "svg"
	case ".png":
		return f.out, "png"
	}

	return f.out, f.format
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}

	return cfg.Build()
}

func run(args []string, stdout io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	log, err := newLogger(f.debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if f.seed == 0 {
		f.seed = time.Now().UnixNano()
	}
	center := geometry.Pt(f.radius, f.radius)
	gen, err := generate.New(
		generate.WithSeed(f.seed),
		generate.WithIterations(f.iterations),
		generate.WithWheelSize(f.wheelMin, f.wheelMax),
		generate.WithCenter(center),
		generate.WithRadius(f.radius),
		generate.WithIsolationBias(f.isolationBias),
		generate.WithRelax(f.relax),
		generate.WithInvariantChecks(f.check),
		generate.WithLogger(log),
	)
	if err != nil {
		return err
	}
	g, stats, err := gen.Run()
	if err != nil {
		return err
	}

	path, format := f.outputPath()
	if err = write(g, path, format, f.size); err != nil {
		return err
	}
	summarize(stdout, aurora.NewAurora(!f.noColor), f.seed, g, stats, path)

	return nil
}

func write(g *core.Graph, path, format string, size int) error {
	opts := []render.Option{render.WithSize(size, size)}
	if format == "png" {
		return render.PNGFile(g, path, opts...)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = render.WriteSVG(out, g, opts...); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

func summarize(w io.Writer, au aurora.Aurora, seed int64, g *core.Graph, st generate.Stats, path string) {
	fmt.Fprintf(w, "%s %s\n", au.Bold("graph:"), au.Green(g.Stats()))
	fmt.Fprintf(w, "%s %d  %s %d  %s %d  %s %d\n",
		au.Bold("steps:"), st.Steps,
		au.Cyan("edges"), st.EdgesAdded,
		au.Cyan("splits"), st.Splits,
		au.Yellow("no-ops"), st.NoOps)
	if st.Relaxations+st.RolledBack > 0 {
		fmt.Fprintf(w, "%s %d  %s %d\n", au.Bold("relaxed:"), st.Relaxations, au.Red("rolled back"), st.RolledBack)
	}
	fmt.Fprintf(w, "%s %d\n", au.Bold("seed:"), seed)
	fmt.Fprintf(w, "%s %s\n", au.Bold("wrote:"), au.Magenta(path))
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "planargen:", err)
		os.Exit(1)
	}
}
