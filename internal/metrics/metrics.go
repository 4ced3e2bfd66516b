package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vrcreative/seo-codex/internal/validate"
)

var (
	PageRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seocodex_page_requests_total",
		Help: "Requests served per page route.",
	}, []string{"page"})

	ValidationRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seocodex_validation_runs_total",
		Help: "Validation runs by result (pass or fail).",
	}, []string{"result"})

	ValidationFindingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seocodex_validation_findings_total",
		Help: "Validation findings by severity.",
	}, []string{"severity"})

	RegistryTags = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "seocodex_registry_tags",
		Help: "Approved tags found by the most recent registry load.",
	})

	ShowsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "seocodex_shows_total",
		Help: "Shows in the published catalog.",
	})
)

// ObserveReport records the outcome of one validation run.
func ObserveReport(r *validate.Report) {
	errs, warns := r.Counts()
	ValidationRunsTotal.WithLabelValues(r.Status()).Inc()
	ValidationFindingsTotal.WithLabelValues(string(validate.SeverityError)).Add(float64(errs))
	ValidationFindingsTotal.WithLabelValues(string(validate.SeverityWarning)).Add(float64(warns))
}
