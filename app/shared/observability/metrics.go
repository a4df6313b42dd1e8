package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the domain-level Prometheus collectors. One instance is
// created at bootstrap and shared by the modules; everything registers
// against the registry that also backs the watermill router metrics.
type Metrics struct {
	StandingsRecomputes      prometheus.Counter
	StandingsRecomputeTime   prometheus.Histogram
	StandingsCacheHits       prometheus.Counter
	StandingsCacheMisses     prometheus.Counter
	TerminalVerdictConflicts prometheus.Counter
	JudgeVerdicts            *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		StandingsRecomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_recomputes_total",
			Help: "Number of full standings recomputations.",
		}),
		StandingsRecomputeTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "standings_recompute_duration_seconds",
			Help:    "Wall time of one standings recomputation.",
			Buckets: prometheus.DefBuckets,
		}),
		StandingsCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_cache_hits_total",
			Help: "Standings requests served from the cache.",
		}),
		StandingsCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "standings_cache_misses_total",
			Help: "Standings requests that required a recomputation.",
		}),
		TerminalVerdictConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "submission_terminal_conflicts_total",
			Help: "Submissions observed with two different terminal verdicts.",
		}),
		JudgeVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "judge_verdicts_total",
			Help: "Judge verdicts ingested, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.StandingsRecomputes,
		m.StandingsRecomputeTime,
		m.StandingsCacheHits,
		m.StandingsCacheMisses,
		m.TerminalVerdictConflicts,
		m.JudgeVerdicts,
	)
	return m
}
