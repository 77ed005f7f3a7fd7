package monitor

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMonitor_Counters(t *testing.T) {
	m := NewMonitor("hangman")

	m.IncRoundsStarted()
	m.IncRoundsStarted()
	m.IncGuess("correct")
	m.IncGuess("wrong")
	m.IncGuess("wrong")
	m.ObserveRoundFinished("lose", 7)
	m.IncCodecFailures()

	if got := testutil.ToFloat64(m.Metrics().RoundsStarted); got != 2 {
		t.Errorf("Expected 2 rounds started, got %v", got)
	}
	if got := testutil.ToFloat64(m.Metrics().Guesses.WithLabelValues("wrong")); got != 2 {
		t.Errorf("Expected 2 wrong guesses, got %v", got)
	}
	if got := testutil.ToFloat64(m.Metrics().RoundsFinished.WithLabelValues("lose")); got != 1 {
		t.Errorf("Expected 1 lost round, got %v", got)
	}
	if got := testutil.ToFloat64(m.Metrics().CodecFailures); got != 1 {
		t.Errorf("Expected 1 codec failure, got %v", got)
	}
}

func TestMonitor_Handler(t *testing.T) {
	m := NewMonitor("hangman")
	m.IncRoundsStarted()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{"hangman_rounds_started_total 1", "hangman_uptime_seconds"} {
		if !strings.Contains(string(body), name) {
			t.Errorf("Expected %q in metrics output", name)
		}
	}
}

func TestNewMonitor_Twice(t *testing.T) {
	// Private registries must not collide.
	NewMonitor("hangman")
	NewMonitor("hangman")
}
