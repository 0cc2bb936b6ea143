package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Normalization outcome metrics
	normalizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_normalizations_total",
			Help: "Total number of raw gateway responses normalized",
		},
		[]string{"generation", "operation", "status"},
	)

	unclassifiableResponsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_unclassifiable_responses_total",
			Help: "Raw responses whose shape matched no known operation response",
		},
		[]string{"generation", "operation"},
	)

	unmappedCodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_unmapped_codes_total",
			Help: "Lookups of gateway codes missing from a mandatory mapping table",
		},
		[]string{"generation", "table"},
	)
)

// RecordNormalization records one normalized response and its canonical status
func RecordNormalization(generation, operation, status string) {
	normalizationsTotal.WithLabelValues(generation, operation, status).Inc()
}

// RecordUnclassifiableResponse records a payload that could not be classified
func RecordUnclassifiableResponse(generation, operation string) {
	unclassifiableResponsesTotal.WithLabelValues(generation, operation).Inc()
}

// RecordUnmappedCode records a mandatory-table lookup miss
func RecordUnmappedCode(generation, table string) {
	unmappedCodesTotal.WithLabelValues(generation, table).Inc()
}
