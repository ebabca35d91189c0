package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/xavierca1/mailchimp-organizer/internal/entity"
)

// Recorder counts conversion runs and the rows flowing through them.
type Recorder struct {
	conversions *prometheus.CounterVec
	rows        *prometheus.CounterVec
}

// NewRecorder registers the conversion metrics on reg. A nil reg uses the
// default registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of export conversions",
			},
			[]string{"kind", "status"},
		),
		rows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversion_rows_total",
				Help: "Rows read from exports and written to Mailchimp files",
			},
			[]string{"kind", "direction"},
		),
	}
}

func (r *Recorder) RecordConversion(kind entity.ExportKind, status string, rowsIn, rowsOut int) {
	r.conversions.WithLabelValues(string(kind), status).Inc()
	r.rows.WithLabelValues(string(kind), "in").Add(float64(rowsIn))
	r.rows.WithLabelValues(string(kind), "out").Add(float64(rowsOut))
}
