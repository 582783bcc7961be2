// Package einsum implements Einstein-summation contraction over ring tensors.
package einsum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/born-ml/ringtensor/internal/tensor"
)

// EquationError describes a contraction that cannot be performed.
// It unwraps to one of the tensor error kinds.
type EquationError struct {
	Equation string
	Term     int  // Index of the offending input term, -1 for the output term or the whole equation.
	Letter   rune // Offending index letter, 0 if none.
	Err      error
	Details  string
}

// Error implements the error interface.
func (e *EquationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %q", e.Err, e.Equation)
	switch {
	case e.Term >= 0:
		fmt.Fprintf(&b, " term %d", e.Term)
	case e.Letter != 0 || e.Details != "":
		b.WriteString(" output")
	}
	if e.Letter != 0 {
		fmt.Fprintf(&b, " index %q", e.Letter)
	}
	if e.Details != "" {
		b.WriteString(": ")
		b.WriteString(e.Details)
	}
	return b.String()
}

// Unwrap returns the error kind.
func (e *EquationError) Unwrap() error {
	return e.Err
}

// Equation is a parsed einsum equation.
type Equation struct {
	Inputs   []string // One index string per operand.
	Output   string   // Free indices of the result, in result-dimension order.
	Explicit bool     // Output was given after "->".
}

// Parse parses "term(,term)*(->term)?" where each term is a run of lowercase
// ASCII letters. Spaces are ignored.
//
// Without "->" the output is the sorted set of letters appearing exactly once
// across all input terms.
//
// Example:
//
//	eq, _ := einsum.Parse("ij,jk->ik")
//	eq, _ = einsum.Parse("ii") // trace, Output == ""
func Parse(equation string) (*Equation, error) {
	src := strings.ReplaceAll(equation, " ", "")
	fail := func(term int, letter rune, details string) error {
		return &EquationError{Equation: equation, Term: term, Letter: letter, Err: tensor.ErrInvalidEquation, Details: details}
	}

	lhs, rhs, explicit := strings.Cut(src, "->")
	if explicit && strings.Contains(rhs, "->") {
		return nil, fail(-1, 0, `more than one "->"`)
	}

	eq := &Equation{Inputs: strings.Split(lhs, ","), Explicit: explicit}
	counts := make(map[rune]int)
	for k, term := range eq.Inputs {
		for _, r := range term {
			if r < 'a' || r > 'z' {
				return nil, fail(k, r, "index letters must be lowercase a-z")
			}
			counts[r]++
		}
	}

	if explicit {
		for _, r := range rhs {
			if r < 'a' || r > 'z' {
				return nil, fail(-1, r, "index letters must be lowercase a-z")
			}
			if counts[r] == 0 {
				return nil, fail(-1, r, "output index does not appear in any input")
			}
			if strings.Count(rhs, string(r)) > 1 {
				return nil, fail(-1, r, "output index repeated")
			}
		}
		eq.Output = rhs
		return eq, nil
	}

	var free []rune
	for r, n := range counts {
		if n == 1 {
			free = append(free, r)
		}
	}
	slices.Sort(free)
	eq.Output = string(free)
	return eq, nil
}

// String formats the equation in explicit form.
func (e *Equation) String() string {
	return strings.Join(e.Inputs, ",") + "->" + e.Output
}
