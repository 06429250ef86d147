package status

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "daily_limits",
		Subsystem: "status",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	},
	[]string{"operation", "error"},
)

var recordsAdded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "daily_limits",
		Subsystem: "status",
		Name:      "records_added_total",
	},
	[]string{"kind"},
)

func observeResponse(operation string, elapsed time.Duration, err bool) {
	histogramResponseTime.
		WithLabelValues(operation, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
