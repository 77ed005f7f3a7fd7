package state

import (
	"errors"
)

// Status is where a round stands.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// ErrTransitionNotAllowed is returned when a state transition is not allowed.
var ErrTransitionNotAllowed = errors.New("state transition not allowed")

// Listener is notified after the machine enters a new status.
type Listener func(from, to Status)

// Machine tracks the status of the current round. Terminal statuses can only
// be left through Reset.
type Machine struct {
	current     Status
	transitions map[Status]map[Status]bool // from -> to
	listeners   []Listener
}

func NewMachine() *Machine {
	return &Machine{
		current: InProgress,
		transitions: map[Status]map[Status]bool{
			InProgress: {InProgress: true, Won: true, Lost: true},
		},
	}
}

// OnEnter registers fn to run on every status change, including Reset.
func (m *Machine) OnEnter(fn Listener) {
	m.listeners = append(m.listeners, fn)
}

func (m *Machine) Current() Status {
	return m.current
}

// ChangeState moves to next if the transition table allows it. Staying in
// the same status is a no-op and does not notify listeners.
func (m *Machine) ChangeState(next Status) error {
	if !m.transitions[m.current][next] {
		return ErrTransitionNotAllowed
	}
	if next == m.current {
		return nil
	}
	m.enter(next)
	return nil
}

// Reset forces the machine into s, used when a new round replaces the old one.
func (m *Machine) Reset(s Status) {
	m.enter(s)
}

func (m *Machine) enter(next Status) {
	prev := m.current
	m.current = next
	for _, fn := range m.listeners {
		fn(prev, next)
	}
}
