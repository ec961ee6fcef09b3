// Package verbose records the named intermediate steps of a calculation
// so callers can render a "show your work" trace alongside the result.
package verbose

import "fmt"

// Step is one recorded calculation step: a human-readable name, the
// symbolic formula that produced the value, and the numeric result.
type Step struct {
	Name    string
	Formula string
	Value   float64

	// Text carries a non-numeric outcome (e.g. "circumpolar").
	// When Text is non-empty, Value is meaningless.
	Text string
}

// String renders the step as a single line.
func (s Step) String() string {
	if s.Text != "" {
		return fmt.Sprintf("%s: %s", s.Name, s.Text)
	}
	if s.Formula != "" {
		return fmt.Sprintf("%s: %s = %.6f", s.Name, s.Formula, s.Value)
	}
	return fmt.Sprintf("%s = %.6f", s.Name, s.Value)
}

// Ledger collects steps in execution order. A Ledger is scoped to a single
// top-level calculation: create one with New at the entry point, pass it
// down the call tree, render Entries at exit.
//
// A nil *Ledger is valid everywhere a ledger is accepted and records
// nothing. Recording never changes a calculation's result; the ledger is a
// side channel only.
//
// A Ledger must not be shared between concurrently executing calculations.
type Ledger struct {
	steps []Step
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// Record appends a numeric step. Safe to call on a nil ledger.
func (l *Ledger) Record(name, formula string, value float64) {
	if l == nil {
		return
	}
	l.steps = append(l.steps, Step{Name: name, Formula: formula, Value: value})
}

// Note appends a textual step for non-numeric outcomes. Safe on nil.
func (l *Ledger) Note(name, text string) {
	if l == nil {
		return
	}
	l.steps = append(l.steps, Step{Name: name, Text: text})
}

// Entries returns a copy of the recorded steps in execution order.
// A nil ledger returns nil.
func (l *Ledger) Entries() []Step {
	if l == nil {
		return nil
	}
	out := make([]Step, len(l.steps))
	copy(out, l.steps)
	return out
}

// Len reports the number of recorded steps. A nil ledger has zero.
func (l *Ledger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.steps)
}
