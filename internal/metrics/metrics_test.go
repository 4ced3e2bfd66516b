package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vrcreative/seo-codex/internal/validate"
)

func TestObserveReport(t *testing.T) {
	runsBefore := testutil.ToFloat64(ValidationRunsTotal.WithLabelValues("fail"))
	errsBefore := testutil.ToFloat64(ValidationFindingsTotal.WithLabelValues("error"))
	warnsBefore := testutil.ToFloat64(ValidationFindingsTotal.WithLabelValues("warning"))

	ObserveReport(&validate.Report{
		Records: 1,
		Findings: []validate.Finding{
			{Severity: validate.SeverityError, Index: 1, Message: "Missing title"},
			{Severity: validate.SeverityError, Index: 1, Message: "Missing page_slug"},
			{Severity: validate.SeverityWarning, Index: 1, Message: "Missing tagline"},
		},
	})

	if got := testutil.ToFloat64(ValidationRunsTotal.WithLabelValues("fail")) - runsBefore; got != 1 {
		t.Errorf("fail runs delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ValidationFindingsTotal.WithLabelValues("error")) - errsBefore; got != 2 {
		t.Errorf("error findings delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(ValidationFindingsTotal.WithLabelValues("warning")) - warnsBefore; got != 1 {
		t.Errorf("warning findings delta = %v, want 1", got)
	}
}
