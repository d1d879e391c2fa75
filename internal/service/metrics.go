package service

import (
	"hospital-appointment-service/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "hospital"

// Metrics holds the collectors exported on /metrics.
type Metrics struct {
	events       *prometheus.CounterVec
	appointments *prometheus.GaugeVec
	dropped      prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_total",
			Help:      "Activity events recorded, by event type.",
		}, []string{"type"}),
		appointments: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "appointments",
			Help:      "Appointments currently held, by status.",
		}, []string{"status"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "events_dropped_total",
			Help:      "Events dropped because the dispatch buffer was full.",
		}),
	}
	for _, c := range []prometheus.Collector{m.events, m.appointments, m.dropped} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Record counts the event; Metrics is itself an EventSink.
func (m *Metrics) Record(eventType, _ string) {
	m.events.WithLabelValues(eventType).Inc()
}

// SetAppointmentCounts replaces the per-status gauge values.
func (m *Metrics) SetAppointmentCounts(counts map[entity.AppointmentStatus]int) {
	for _, status := range entity.AppointmentStatuses {
		m.appointments.WithLabelValues(status.String()).Set(float64(counts[status]))
	}
}

func (m *Metrics) EventDropped() {
	m.dropped.Inc()
}
