// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mvncdf reads points from stdin, one per line, and prints the
// multivariate normal CDF at each point with its error estimate.
//
// Usage:
//
//	mvncdf [flags] < points
//
// Each input line holds the coordinates of one point separated by
// spaces or commas. Blank lines and lines starting with # are skipped.
// With -lower, each point is the upper corner of a box whose lower
// corner is given by the flag, and the box probability is printed
// instead.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	logging "github.com/op/go-logging"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/statnum/mvnorm/mvncdf"
	"github.com/statnum/mvnorm/stats"
)

const progName = "mvncdf"

var log = logging.MustGetLogger(progName)

type config struct {
	mean     []float64
	cov      []float64
	lower    []float64
	maxEvals int
	absTol   float64
	relTol   float64
	seed     uint64
	pdf      bool
	verbose  bool
}

func startLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:6s} %{module:-16s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", progName, err)
		os.Exit(2)
	}
	startLogging(cfg.verbose)

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	var mean, cov, lower string
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.StringVar(&mean, "mean", "", "comma-separated mean `vector` (default all zeros)")
	fs.StringVar(&cov, "cov", "", "covariance `matrix`, rows separated by ';' (default identity)")
	fs.StringVar(&lower, "lower", "", "lower corner `vector`; print box probabilities instead of CDFs")
	fs.IntVar(&cfg.maxEvals, "maxevals", 0, "maximum integrand evaluations per point (0 for default)")
	fs.Float64Var(&cfg.absTol, "abstol", stats.DefaultAbsTol, "absolute error tolerance")
	fs.Float64Var(&cfg.relTol, "reltol", 0, "relative error tolerance")
	fs.Uint64Var(&cfg.seed, "seed", 0, "random `seed` for lattice shifts (0 for the fixed default)")
	fs.BoolVar(&cfg.pdf, "pdf", false, "also print the density at each point")
	fs.BoolVar(&cfg.verbose, "v", false, "log debugging information")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	var err error
	if cfg.mean, err = parseVector(mean); err != nil {
		return nil, fmt.Errorf("-mean: %w", err)
	}
	if cfg.cov, err = parseVector(strings.ReplaceAll(cov, ";", ",")); err != nil {
		return nil, fmt.Errorf("-cov: %w", err)
	}
	if cfg.lower, err = parseVector(lower); err != nil {
		return nil, fmt.Errorf("-lower: %w", err)
	}
	return cfg, nil
}

// parseVector parses numbers separated by commas or white space. "inf"
// and "-inf" are accepted. An empty string gives a nil slice.
func parseVector(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}
	xs := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// newDist builds the distribution described by cfg for points of
// dimension dim.
func newDist(cfg *config, dim int) (*stats.MultivariateNormal, error) {
	mean := cfg.mean
	if len(mean) == 0 {
		mean = make([]float64, dim)
	}
	if len(mean) != dim {
		return nil, fmt.Errorf("mean has %d elements but points have %d", len(mean), dim)
	}

	var m *stats.MultivariateNormal
	var err error
	if len(cfg.cov) == 0 {
		m, err = stats.NewMultivariateNormalMean(mean)
	} else {
		if len(cfg.cov) != dim*dim {
			return nil, fmt.Errorf("covariance has %d elements, want %d", len(cfg.cov), dim*dim)
		}
		m, err = stats.NewMultivariateNormalCov(mean, mat.NewDense(dim, dim, cfg.cov))
	}
	if err != nil {
		return nil, err
	}

	m.MaxEvals = cfg.maxEvals
	m.AbsTol = cfg.absTol
	m.RelTol = cfg.relTol
	if cfg.seed != 0 {
		src := prng.NewMT19937()
		src.Seed(cfg.seed)
		m.Src = src
	}
	return m, nil
}

func run(cfg *config, r io.Reader, w io.Writer) error {
	points, err := readPoints(r)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	dim := len(points[0])
	m, err := newDist(cfg, dim)
	if err != nil {
		return err
	}
	if cfg.lower != nil && len(cfg.lower) != dim {
		return fmt.Errorf("-lower has %d elements but points have %d", len(cfg.lower), dim)
	}

	out := bufio.NewWriter(w)
	defer out.Flush()
	for i, x := range points {
		if len(x) != dim {
			return fmt.Errorf("point %d has %d coordinates, want %d", i+1, len(x), dim)
		}
		var res mvncdf.Result
		if cfg.lower != nil {
			res, err = m.IntervalResult(cfg.lower, x)
		} else {
			res, err = m.CDFResult(x)
		}
		if err != nil {
			return fmt.Errorf("point %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "%.10g ± %.2g  %s", res.Value, res.Error, res.Status)
		if cfg.pdf {
			p, err := m.PDF(x)
			if err != nil {
				return fmt.Errorf("point %d: %w", i+1, err)
			}
			fmt.Fprintf(out, "  pdf %.6g", p)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func readPoints(r io.Reader) ([][]float64, error) {
	var points [][]float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		x, err := parseVector(l)
		if err != nil {
			return nil, err
		}
		points = append(points, x)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}
