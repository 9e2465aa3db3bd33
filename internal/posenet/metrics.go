package posenet

import "github.com/prometheus/client_golang/prometheus"

var (
	forwardTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rtpose",
			Subsystem: "net",
			Name:      "forward_total",
			Help:      "Total forward passes by outcome",
		},
		[]string{"status"},
	)

	forwardDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "rtpose",
			Subsystem: "net",
			Name:      "forward_duration_seconds",
			Help:      "Duration of successful forward passes (transfer + execution)",
			Buckets:   prometheus.DefBuckets,
		},
	)

	transferBytes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rtpose",
			Subsystem: "net",
			Name:      "h2d_bytes_total",
			Help:      "Bytes copied host-to-device for input tensors",
		},
	)

	initTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rtpose",
			Subsystem: "net",
			Name:      "init_total",
			Help:      "Engine initializations by outcome",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(forwardTotal, forwardDuration, transferBytes, initTotal)
}
