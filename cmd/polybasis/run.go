// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/matrix"
	"github.com/katalvlaran/polybasis/multiindex"
	"github.com/katalvlaran/polybasis/operator"
	"github.com/katalvlaran/polybasis/poly"
	"github.com/katalvlaran/polybasis/transform"
)

var errUsage = errors.New("usage: polybasis <pairs|operator|transform|roundtrip> [flags]")

// gridFlags are shared by every command that needs a grid.
type gridFlags struct {
	m      int
	n      int
	p      float64
	points string
	values string
	from   string
	to     string
}

func (f *gridFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.m, "m", 1, "spatial dimension")
	fs.IntVar(&f.n, "n", 2, "polynomial degree")
	fs.Float64Var(&f.p, "p", 1, "lp-degree of the multi-index set (use Inf for tensorial)")
	fs.StringVar(&f.points, "points", "leja", "generating points: leja or equidistant")
	fs.StringVar(&f.values, "values", "", "explicit comma-separated generating values (all dimensions)")
	fs.StringVar(&f.from, "from", "canonical", "origin basis")
	fs.StringVar(&f.to, "to", "newton", "target basis")
}

func (f *gridFlags) grid() (*grid.Grid, error) {
	set, err := multiindex.FromDegree(f.m, f.n, f.p)
	if err != nil {
		return nil, err
	}
	var opt grid.Option
	switch {
	case f.values != "":
		vals, err := parseFloats(strings.Split(f.values, ","))
		if err != nil {
			return nil, err
		}
		opt = grid.WithGenerator(grid.Values(vals...))
	case f.points == "leja":
		opt = grid.WithGenerator(grid.LejaChebyshevLobatto)
	case f.points == "equidistant":
		opt = grid.WithGenerator(grid.Equidistant(-1, 1))
	default:
		return nil, fmt.Errorf("unknown -points %q", f.points)
	}

	return grid.New(set, opt)
}

func (f *gridFlags) pair() (poly.Basis, poly.Basis, error) {
	from, err := poly.ParseBasis(f.from)
	if err != nil {
		return 0, 0, err
	}
	to, err := poly.ParseBasis(f.to)
	if err != nil {
		return 0, 0, err
	}

	return from, to, nil
}

// run dispatches a command and writes its report to w.
func run(args []string, w io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(w)
	var gf gridFlags
	gf.register(fs)
	if err := fs.Parse(rest); err != nil {
		return err
	}

	reg := operator.DefaultRegistry()
	switch cmd {
	case "pairs":
		return printPairs(w, reg)
	case "operator":
		return printOperator(w, reg, &gf)
	case "transform":
		return printTransform(w, reg, &gf, fs.Args())
	case "roundtrip":
		return printRoundTrip(w, reg, &gf)
	}

	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func printPairs(w io.Writer, reg *operator.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORIGIN\tTARGET")
	for _, p := range reg.Pairs() {
		fmt.Fprintf(tw, "%s\t%s\n", p.Origin, p.Target)
	}

	return tw.Flush()
}

func printOperator(w io.Writer, reg *operator.Registry, gf *gridFlags) error {
	g, err := gf.grid()
	if err != nil {
		return err
	}
	from, to, err := gf.pair()
	if err != nil {
		return err
	}
	op, err := reg.Build(from, to, g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "# set %v\n# grid %s\n", g.MultiIndex(), g.Fingerprint().Short())
	_, err = fmt.Fprint(w, op)

	return err
}

func printTransform(w io.Writer, reg *operator.Registry, gf *gridFlags, coeffArgs []string) error {
	g, err := gf.grid()
	if err != nil {
		return err
	}
	from, to, err := gf.pair()
	if err != nil {
		return err
	}
	coeffs, err := parseFloats(coeffArgs)
	if err != nil {
		return err
	}
	p, err := poly.New(from, coeffs, g)
	if err != nil {
		return err
	}
	q, err := transform.NewCatalog(reg).Convert(p, to)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ALPHA\t%s\t%s\n", strings.ToUpper(from.String()), strings.ToUpper(to.String()))
	for i, alpha := range g.MultiIndex().Exponents() {
		a, _ := p.Coeff(i)
		b, _ := q.Coeff(i)
		fmt.Fprintf(tw, "%v\t%.12g\t%.12g\n", alpha, a, b)
	}

	return tw.Flush()
}

func printRoundTrip(w io.Writer, reg *operator.Registry, gf *gridFlags) error {
	g, err := gf.grid()
	if err != nil {
		return err
	}
	from, to, err := gf.pair()
	if err != nil {
		return err
	}
	fwd, err := reg.Build(from, to, g)
	if err != nil {
		return err
	}
	back, err := reg.Build(to, from, g)
	if err != nil {
		return err
	}
	res, err := operator.Residual(back, fwd)
	if err != nil {
		return err
	}
	cond, err := matrix.Cond(fwd.Matrix())
	if err != nil {
		return err
	}

	// coefficient round trip on a deterministic vector
	coeffs := make([]float64, g.Len())
	for i := range coeffs {
		coeffs[i] = math.Sin(float64(i + 1))
	}
	mid, err := fwd.Apply(coeffs)
	if err != nil {
		return err
	}
	again, err := back.Apply(mid)
	if err != nil {
		return err
	}
	errs := make(stats.Float64Data, len(coeffs))
	for i := range coeffs {
		errs[i] = math.Abs(again[i] - coeffs[i])
	}
	coeffMax, coeffMedian := 0.0, 0.0
	if len(errs) > 0 {
		if coeffMax, err = stats.Max(errs); err != nil {
			return err
		}
		if coeffMedian, err = stats.Median(errs); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "pair\t%v <-> %v\n", fwd.Pair(), back.Pair())
	fmt.Fprintf(tw, "size\t%d\n", g.Len())
	fmt.Fprintf(tw, "condition\t%.3e\n", cond)
	fmt.Fprintf(tw, "operator residual\t%v\n", res)
	fmt.Fprintf(tw, "coefficient error\tmax=%.3e median=%.3e\n", coeffMax, coeffMedian)

	return tw.Flush()
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, s := range fields {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
