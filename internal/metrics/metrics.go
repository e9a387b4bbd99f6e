package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ArowuTest/luckygen/internal/generator"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	gamesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "luckygen",
			Name:      "games_generated_total",
			Help:      "Games generated, by provenance.",
		},
		[]string{"provenance"},
	)

	generationAttempts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "luckygen",
			Name:      "generation_attempts",
			Help:      "Candidates drawn per generated game.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1 to 8192
		},
	)

	batchWarnings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "luckygen",
			Name:      "batch_warnings_total",
			Help:      "Batches that stopped early for lack of numbers.",
		},
	)

	historyDraws = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "luckygen",
			Name:      "history_draws",
			Help:      "Historical draws in the session snapshot.",
		},
	)
)

func init() {
	Registry.MustRegister(gamesGenerated, generationAttempts, batchWarnings, historyDraws)
}

// Handler exposes the registry for scraping.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordGame counts one generated game.
func RecordGame(res generator.Result) {
	gamesGenerated.WithLabelValues(string(res.Provenance)).Inc()
	generationAttempts.Observe(float64(res.Attempts))
}

// RecordBatch counts every game of a batch and its early stop, if any.
func RecordBatch(b generator.Batch) {
	for _, g := range b.Games {
		RecordGame(g)
	}
	if b.Partial() {
		batchWarnings.Inc()
	}
}

// SetHistoryDraws publishes the snapshot size.
func SetHistoryDraws(n int) {
	historyDraws.Set(float64(n))
}
