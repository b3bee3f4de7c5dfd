// SPDX-License-Identifier: MIT

package crossval

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/bagchain/markov"
	"github.com/katalvlaran/bagchain/montecarlo"
	"gopkg.in/yaml.v3"
)

// Precision is the number of decimals in every rendered number.
const Precision = 6

// ErrNilModel is returned by Build when no model is supplied.
var ErrNilModel = errors.New("crossval: nil model")

// Report is everything printed for one run.
type Report struct {
	States       []string    `yaml:"states"`
	Matrix       [][]float64 `yaml:"transition_matrix"`
	Steps        int         `yaml:"steps"`
	Distribution []float64   `yaml:"distribution"`
	Exact        float64     `yaml:"exact_expectation"`
	MonteCarlo   MonteCarlo  `yaml:"monte_carlo"`
	Comparison   Comparison  `yaml:"comparison"`
}

// MonteCarlo is the rendered part of a montecarlo.Estimate.
type MonteCarlo struct {
	Trials  int     `yaml:"trials"`
	Workers int     `yaml:"workers"`
	Seed    int64   `yaml:"seed"`
	Mean    float64 `yaml:"mean"`
	StdErr  float64 `yaml:"std_err"`
}

// Build propagates m.Initial for steps transitions and assembles the report
// against est.
func Build(m *markov.Model, steps int, est montecarlo.Estimate, tolerance float64) (Report, error) {
	if m == nil {
		return Report{}, ErrNilModel
	}
	dist, exact, err := m.Expected(steps)
	if err != nil {
		return Report{}, fmt.Errorf("crossval: %w", err)
	}
	states := make([]string, m.Space.Size())
	for i := range states {
		states[i] = m.Space.Label(markov.State(i))
	}

	return Report{
		States:       states,
		Matrix:       m.P.Rows(),
		Steps:        steps,
		Distribution: []float64(dist),
		Exact:        exact,
		MonteCarlo: MonteCarlo{
			Trials:  est.Trials,
			Workers: est.Workers,
			Seed:    est.Seed,
			Mean:    est.Mean,
			StdErr:  est.StdErr,
		},
		Comparison: Compare(exact, est, tolerance),
	}, nil
}

const rule = "------------------------------------------\n"

// WriteText renders r as a fixed-precision console report.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("Transition matrix P:\n")
	width := Precision + 3
	fmt.Fprintf(&b, "%-8s", "")
	for _, s := range r.States {
		fmt.Fprintf(&b, " %*s", width, s)
	}
	b.WriteByte('\n')
	for i, row := range r.Matrix {
		label := ""
		if i < len(r.States) {
			label = r.States[i]
		}
		fmt.Fprintf(&b, "%-8s", label)
		for _, v := range row {
			fmt.Fprintf(&b, " %*.*f", width, Precision, v)
		}
		b.WriteByte('\n')
	}
	b.WriteString(rule)

	fmt.Fprintf(&b, "Distribution after %d steps:\n[", r.Steps)
	for i, v := range r.Distribution {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.*f", Precision, v)
	}
	b.WriteString("]\n")
	b.WriteString(rule)

	fmt.Fprintf(&b, "Exact expectation of A after %d steps: %.*f\n\n", r.Steps, Precision, r.Exact)

	mc, c := r.MonteCarlo, r.Comparison
	fmt.Fprintf(&b, "Monte Carlo (%d trials, %d workers, seed %d):\n", mc.Trials, mc.Workers, mc.Seed)
	fmt.Fprintf(&b, "  sample mean: %.*f\n", Precision, mc.Mean)
	fmt.Fprintf(&b, "  std error:   %.*f\n", Precision, mc.StdErr)
	verdict := "agree"
	if !c.Agree {
		verdict = "DISAGREE"
	}
	fmt.Fprintf(&b, "  difference:  %.*f (%.2f SE) -> %s\n", Precision, c.AbsDiff, c.ZScore, verdict)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteYAML renders r as a YAML document with every float rounded to
// Precision decimals.
func WriteYAML(w io.Writer, r Report) error {
	out := r
	out.Matrix = make([][]float64, len(r.Matrix))
	for i, row := range r.Matrix {
		out.Matrix[i] = roundAll(row)
	}
	out.Distribution = roundAll(r.Distribution)
	out.Exact = round(r.Exact)
	out.MonteCarlo.Mean = round(r.MonteCarlo.Mean)
	out.MonteCarlo.StdErr = round(r.MonteCarlo.StdErr)
	c := &out.Comparison
	c.Exact, c.Estimate, c.StdErr, c.AbsDiff = round(c.Exact), round(c.Estimate), round(c.StdErr), round(c.AbsDiff)
	if !math.IsInf(c.ZScore, 0) {
		c.ZScore = math.Round(c.ZScore*100) / 100
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("crossval: encode yaml: %w", err)
	}
	return enc.Close()
}

var scale = math.Pow10(Precision)

func round(v float64) float64 { return math.Round(v*scale) / scale }

func roundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = round(v)
	}
	return out
}
