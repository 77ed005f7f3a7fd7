// monitor/monitor.go
package monitor

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wfunc/hangman/logger"
)

type Metrics struct {
	RoundsStarted  prometheus.Counter
	Guesses        *prometheus.CounterVec // result: correct|wrong|rejected
	RoundsFinished *prometheus.CounterVec // outcome: win|lose
	WrongGuesses   prometheus.Histogram   // misses per finished round
	CodecFailures  prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		RoundsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Number of rounds started",
		}),
		Guesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "guesses_total",
			Help:      "Guesses submitted, by result",
		}, []string{"result"}),
		RoundsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_finished_total",
			Help:      "Rounds that reached a win or a loss, by outcome",
		}, []string{"outcome"}),
		WrongGuesses: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "wrong_guesses_per_round",
			Help:      "Wrong guesses made in each finished round",
			Buckets:   prometheus.LinearBuckets(0, 1, 8),
		}),
		CodecFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corrupt_saves_total",
			Help:      "Saved rounds rejected as corrupt on load",
		}),
	}
}

// Monitor owns a private registry so several monitors can coexist in tests.
type Monitor struct {
	metrics   *Metrics
	registry  *prometheus.Registry
	startTime time.Time
	server    *http.Server
}

func NewMonitor(namespace string) *Monitor {
	m := &Monitor{
		metrics:   NewMetrics(namespace),
		registry:  prometheus.NewRegistry(),
		startTime: time.Now(),
	}
	m.registry.MustRegister(
		m.metrics.RoundsStarted,
		m.metrics.Guesses,
		m.metrics.RoundsFinished,
		m.metrics.WrongGuesses,
		m.metrics.CodecFailures,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Seconds since the process started",
		}, func() float64 { return time.Since(m.startTime).Seconds() }),
	)
	return m
}

func (m *Monitor) Metrics() *Metrics { return m.metrics }

func (m *Monitor) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartServer serves /metrics on addr in the background.
func (m *Monitor) StartServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	m.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Log.Infof("Metrics listening on %s", addr)
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("Metrics server stopped: %v", err)
		}
	}()
}

func (m *Monitor) Stop() {
	if m.server != nil {
		_ = m.server.Close()
	}
}

func (m *Monitor) IncRoundsStarted() {
	m.metrics.RoundsStarted.Inc()
}

func (m *Monitor) IncGuess(result string) {
	m.metrics.Guesses.WithLabelValues(result).Inc()
}

func (m *Monitor) ObserveRoundFinished(outcome string, wrongGuesses int) {
	m.metrics.RoundsFinished.WithLabelValues(outcome).Inc()
	m.metrics.WrongGuesses.Observe(float64(wrongGuesses))
}

func (m *Monitor) IncCodecFailures() {
	m.metrics.CodecFailures.Inc()
}
