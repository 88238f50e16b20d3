// Package metrics exposes Prometheus counters for grid generation, answers,
// finished rounds and SSH sessions.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	sumgrid "github.com/vovakirdan/math-arcade/internal/games/sumgrid/core"
)

// Metrics holds every collector the arcade reports.
type Metrics struct {
	gatherer prometheus.Gatherer

	gridOps     *prometheus.CounterVec
	pathLength  prometheus.Histogram
	replaced    prometheus.Histogram
	answers     *prometheus.CounterVec
	rounds      *prometheus.CounterVec
	roundScore  *prometheus.HistogramVec
	sshSessions prometheus.Counter
	sshActive   prometheus.Gauge
}

// New registers the collectors with reg.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,

		gridOps: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathcade_grid_operations_total",
			Help: "Grid generator runs by operation and whether an existing path was kept",
		}, []string{"op", "reused"}),

		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mathcade_grid_path_length",
			Help:    "Cells in the path guaranteed by each generator run",
			Buckets: []float64{2, 3, 4},
		}),

		replaced: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mathcade_grid_replaced_cells",
			Help:    "Cells overwritten per regenerate",
			Buckets: []float64{1, 2, 3, 4, 6, 10},
		}),

		answers: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathcade_answers_total",
			Help: "Submitted answers by game and outcome",
		}, []string{"game", "outcome"}),

		rounds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mathcade_rounds_total",
			Help: "Finished rounds by game",
		}, []string{"game"}),

		roundScore: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mathcade_round_score",
			Help:    "Final score of finished rounds",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		}, []string{"game"}),

		sshSessions: f.NewCounter(prometheus.CounterOpts{
			Name: "mathcade_ssh_sessions_total",
			Help: "SSH sessions opened",
		}),

		sshActive: f.NewGauge(prometheus.GaugeOpts{
			Name: "mathcade_ssh_sessions_active",
			Help: "SSH sessions currently connected",
		}),
	}
}

var defaultMetrics = New(newDefaultRegistry())

func newDefaultRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Default returns the process-wide metrics.
func Default() *Metrics {
	return defaultMetrics
}

// ObserveGrid records a generator run. It has the sumgrid Observer
// signature so it can be passed to WithObserver directly.
func (m *Metrics) ObserveGrid(ev sumgrid.Event) {
	m.gridOps.WithLabelValues(string(ev.Op), strconv.FormatBool(ev.Reused)).Inc()
	m.pathLength.Observe(float64(ev.PathLen))
	if ev.Op == sumgrid.OpRegenerate {
		m.replaced.Observe(float64(ev.Replaced))
	}
}

// ObserveAnswer records one submitted answer.
func (m *Metrics) ObserveAnswer(game string, correct bool) {
	outcome := "incorrect"
	if correct {
		outcome = "correct"
	}
	m.answers.WithLabelValues(game, outcome).Inc()
}

// ObserveRound records a finished round.
func (m *Metrics) ObserveRound(game string, score int) {
	m.rounds.WithLabelValues(game).Inc()
	m.roundScore.WithLabelValues(game).Observe(float64(score))
}

// SessionOpened records a new SSH session.
func (m *Metrics) SessionOpened() {
	m.sshSessions.Inc()
	m.sshActive.Inc()
}

// SessionClosed records a finished SSH session.
func (m *Metrics) SessionClosed() {
	m.sshActive.Dec()
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
