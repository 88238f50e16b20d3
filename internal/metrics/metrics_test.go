package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	sumgrid "github.com/vovakirdan/math-arcade/internal/games/sumgrid/core"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}
	out := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		out[f.GetName()] = f
	}
	return out
}

func counterValue(f *dto.MetricFamily, labels map[string]string) float64 {
	if f == nil {
		return 0
	}
	for _, m := range f.GetMetric() {
		match := true
		for _, lp := range m.GetLabel() {
			if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
				match = false
			}
		}
		if match {
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestObserveGridFromGenerator(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	gen := sumgrid.NewGenerator(1, sumgrid.WithObserver(m.ObserveGrid))
	g, path, err := gen.Generate(sumgrid.Params{Size: 4, Target: 9})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for range 3 {
		if path, err = gen.Regenerate(g, path, 9); err != nil {
			t.Fatalf("Regenerate failed: %v", err)
		}
	}

	families := gather(t, reg)
	ops := families["mathcade_grid_operations_total"]
	if got := counterValue(ops, map[string]string{"op": "generate"}); got != 1 {
		t.Errorf("generate count = %v, expected 1", got)
	}
	if got := counterValue(ops, map[string]string{"op": "regenerate", "reused": "false"}); got != 3 {
		t.Errorf("regenerate count = %v, expected 3", got)
	}

	hist := families["mathcade_grid_path_length"].GetMetric()[0].GetHistogram()
	if hist.GetSampleCount() != 4 {
		t.Errorf("path length samples = %d, expected 4", hist.GetSampleCount())
	}
	replaced := families["mathcade_grid_replaced_cells"].GetMetric()[0].GetHistogram()
	if replaced.GetSampleCount() != 3 {
		t.Errorf("replaced samples = %d, expected 3", replaced.GetSampleCount())
	}
}

func TestObserveAnswersAndRounds(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveAnswer("numberbonds", true)
	m.ObserveAnswer("numberbonds", true)
	m.ObserveAnswer("numberbonds", false)
	m.ObserveRound("numberbonds", 2)

	families := gather(t, reg)
	answers := families["mathcade_answers_total"]
	if got := counterValue(answers, map[string]string{"outcome": "correct"}); got != 2 {
		t.Errorf("correct answers = %v, expected 2", got)
	}
	if got := counterValue(answers, map[string]string{"outcome": "incorrect"}); got != 1 {
		t.Errorf("incorrect answers = %v, expected 1", got)
	}
	if got := counterValue(families["mathcade_rounds_total"], nil); got != 1 {
		t.Errorf("rounds = %v, expected 1", got)
	}
}

func TestSessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	families := gather(t, reg)
	if got := families["mathcade_ssh_sessions_active"].GetMetric()[0].GetGauge().GetValue(); got != 1 {
		t.Errorf("active sessions = %v, expected 1", got)
	}
	if got := counterValue(families["mathcade_ssh_sessions_total"], nil); got != 2 {
		t.Errorf("total sessions = %v, expected 2", got)
	}
}

func TestHandlerServesText(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveRound("coverup", 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if rec.Code != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(string(body), `mathcade_rounds_total{game="coverup"} 1`) {
		t.Errorf("metrics output missing rounds counter:\n%s", body)
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same instance")
	}
}
