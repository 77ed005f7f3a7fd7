package state

import (
	"testing"
)

// recorder collects transitions seen by a Listener.
type recorder struct {
	seen [][2]Status
}

func (r *recorder) listen(from, to Status) {
	r.seen = append(r.seen, [2]Status{from, to})
}

func TestMachine_InitialState(t *testing.T) {
	m := NewMachine()
	if m.Current() != InProgress {
		t.Errorf("Expected initial status in_progress, got %s", m.Current())
	}
}

func TestMachine_ChangeState(t *testing.T) {
	m := NewMachine()
	rec := &recorder{}
	m.OnEnter(rec.listen)

	if err := m.ChangeState(InProgress); err != nil {
		t.Fatalf("Staying in progress should be allowed, got: %v", err)
	}
	if len(rec.seen) != 0 {
		t.Errorf("Staying in the same status should not notify, got %v", rec.seen)
	}

	if err := m.ChangeState(Won); err != nil {
		t.Fatalf("ChangeState should not return an error, but got: %v", err)
	}
	if m.Current() != Won {
		t.Errorf("Expected current status won, got %s", m.Current())
	}
	if len(rec.seen) != 1 || rec.seen[0] != [2]Status{InProgress, Won} {
		t.Errorf("Expected one in_progress->won notification, got %v", rec.seen)
	}
}

func TestMachine_TerminalIsSticky(t *testing.T) {
	for _, terminal := range []Status{Won, Lost} {
		m := NewMachine()
		if err := m.ChangeState(terminal); err != nil {
			t.Fatalf("ChangeState(%s) failed: %v", terminal, err)
		}

		for _, next := range []Status{InProgress, Won, Lost} {
			if err := m.ChangeState(next); err != ErrTransitionNotAllowed {
				t.Errorf("Expected ErrTransitionNotAllowed for %s->%s, got: %v", terminal, next, err)
			}
		}
		if m.Current() != terminal {
			t.Errorf("Expected status to remain %s after a blocked transition, got %s", terminal, m.Current())
		}
	}
}

func TestMachine_Reset(t *testing.T) {
	m := NewMachine()
	rec := &recorder{}
	m.OnEnter(rec.listen)

	_ = m.ChangeState(Lost)
	m.Reset(InProgress)

	if m.Current() != InProgress {
		t.Errorf("Expected Reset to leave a terminal status, got %s", m.Current())
	}
	if len(rec.seen) != 2 || rec.seen[1] != [2]Status{Lost, InProgress} {
		t.Errorf("Expected lost->in_progress notification on Reset, got %v", rec.seen)
	}
}

func TestStatus_String(t *testing.T) {
	cases := map[Status]string{InProgress: "in_progress", Won: "won", Lost: "lost", Status(9): "unknown"}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("Expected %q, got %q", want, s.String())
		}
	}
	if InProgress.Terminal() || !Won.Terminal() || !Lost.Terminal() {
		t.Error("Terminal should be true for won and lost only")
	}
}
