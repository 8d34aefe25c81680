// Package lifecycle declares the status transition tables of every stateful
// entity. Validation and documentation read from the same tables.
package lifecycle

import (
	"errors"
	"fmt"
	"slices"
)

type State string

var ErrInvalidTransition = errors.New("invalid status transition")

// TransitionError names the rejected pair.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("Cannot change status from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type Machine struct {
	name    string
	initial State
	edges   map[State][]State
}

func NewMachine(name string, initial State, edges map[State][]State) Machine {
	return Machine{name: name, initial: initial, edges: edges}
}

func (m Machine) Name() string {
	return m.name
}

func (m Machine) Initial() State {
	return m.initial
}

func (m Machine) CanTransition(from, to State) bool {
	return slices.Contains(m.edges[from], to)
}

// Transition returns a *TransitionError when to is not reachable from from.
func (m Machine) Transition(from, to State) error {
	if !m.CanTransition(from, to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}

func (m Machine) Targets(from State) []State {
	return slices.Clone(m.edges[from])
}

func (m Machine) IsTerminal(s State) bool {
	return len(m.edges[s]) == 0
}

// Known reports whether s appears anywhere in the table.
func (m Machine) Known(s State) bool {
	if s == m.initial {
		return true
	}
	for from, targets := range m.edges {
		if from == s || slices.Contains(targets, s) {
			return true
		}
	}
	return false
}
