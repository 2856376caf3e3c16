package midi2demo

import "github.com/prometheus/client_golang/prometheus"

// demoMetrics is the optional prometheus instrumentation for the UMP and CI
// dispatchers, registered only when Config.Metrics is set (the library
// itself never touches a metrics registry — see AMBIENT STACK).
type demoMetrics struct {
	decoded        *prometheus.CounterVec
	unknown        prometheus.Counter
	bufferOverflow prometheus.Counter
}

func newDemoMetrics(reg prometheus.Registerer) *demoMetrics {
	m := &demoMetrics{
		decoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "midi2demo_messages_decoded_total",
			Help: "The total number of decoded UMP and CI messages, by family.",
		}, []string{"family"}),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "midi2demo_unknown_total",
			Help: "The total number of messages that did not match a known type.",
		}),
		bufferOverflow: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "midi2demo_buffer_overflow_total",
			Help: "The total number of CI scratch-buffer overflows.",
		}),
	}
	reg.MustRegister(m.decoded, m.unknown, m.bufferOverflow)
	return m
}
