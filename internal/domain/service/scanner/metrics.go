package scanner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tg_dealscan/internal/domain/entity"
	"tg_dealscan/internal/domain/value"
)

const metricsNamespace = "dealscan"

const (
	resultAlert   = "alert"
	resultIgnored = "ignored"
	resultEdit    = "edit"

	editUpdated  = "updated"
	editRejected = "rejected"
)

// Metrics счётчики сканера. Регистрируются в переданном реестре, чтобы тесты не делили глобальный.
type Metrics struct {
	messages *prometheus.CounterVec
	reasons  *prometheus.CounterVec
	edits    *prometheus.CounterVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		messages: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: metricsNamespace,
			Name:      "messages_total",
			Help:      "Incoming text messages by handling result.",
		}, []string{"result"}),
		reasons: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: metricsNamespace,
			Name:      "alert_reasons_total",
			Help:      "Alert reasons by kind.",
		}, []string{"kind"}),
		edits: factory.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: metricsNamespace,
			Name:      "setting_edits_total",
			Help:      "Setting edits by field and result.",
		}, []string{"field", "result"}),
	}
}

func (m *Metrics) observeAlert(verdict entity.DealVerdict) {
	if m == nil {
		return
	}

	m.messages.WithLabelValues(resultAlert).Inc()

	for _, r := range verdict.Reasons {
		m.reasons.WithLabelValues(string(r.Kind)).Inc()
	}
}

func (m *Metrics) observeIgnored() {
	if m == nil {
		return
	}

	m.messages.WithLabelValues(resultIgnored).Inc()
}

func (m *Metrics) observeEdit(field value.SettingField, updated bool) {
	if m == nil {
		return
	}

	result := editRejected
	if updated {
		result = editUpdated
	}

	m.messages.WithLabelValues(resultEdit).Inc()
	m.edits.WithLabelValues(field.String(), result).Inc()
}
