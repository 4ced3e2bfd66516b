package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Exit statuses of a validation run.
const (
	ExitPass = 0
	ExitFail = 1
)

// Report is the outcome of one validation run.
type Report struct {
	// Records is the number of records validated.
	Records int
	// Findings holds errors and warnings in the order they were produced:
	// record by record, then the duplicate slug pass.
	Findings []Finding
}

// Errors returns the error findings in order.
func (r *Report) Errors() []Finding {
	return r.filter(SeverityError)
}

// Warnings returns the warning findings in order.
func (r *Report) Warnings() []Finding {
	return r.filter(SeverityWarning)
}

func (r *Report) filter(sev Severity) []Finding {
	out := []Finding{}
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Counts returns the number of errors and warnings.
func (r *Report) Counts() (errs, warns int) {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			errs++
		} else {
			warns++
		}
	}
	return errs, warns
}

// Passed reports whether the run has no errors. Warnings do not count.
func (r *Report) Passed() bool {
	errs, _ := r.Counts()
	return errs == 0
}

// ExitCode returns ExitPass or ExitFail.
func (r *Report) ExitCode() int {
	if r.Passed() {
		return ExitPass
	}
	return ExitFail
}

// Status returns "pass" or "fail".
func (r *Report) Status() string {
	if r.Passed() {
		return "pass"
	}
	return "fail"
}

type reportJSON struct {
	Status   string    `json:"status"`
	ExitCode int       `json:"exit_code"`
	Records  int       `json:"records"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Summary  struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	} `json:"summary"`
}

// MarshalJSON encodes the report with separate error and warning lists.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		Status:   r.Status(),
		ExitCode: r.ExitCode(),
		Records:  r.Records,
		Errors:   r.Errors(),
		Warnings: r.Warnings(),
	}
	out.Summary.Errors, out.Summary.Warnings = r.Counts()
	return json.Marshal(out)
}

const rule = "============================================================"

// WriteText writes the human-readable report: one prefixed line per finding
// in production order, then the summary block. Colors are applied only when
// colorize is true.
func (r *Report) WriteText(w io.Writer, colorize bool) error {
	red := paint(colorize, color.FgRed)
	yellow := paint(colorize, color.FgYellow)
	green := paint(colorize, color.FgGreen)
	bold := paint(colorize, color.Bold)

	var b strings.Builder
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			b.WriteString(red("❌ " + f.String()))
		} else {
			b.WriteString(yellow("⚠️  " + f.String()))
		}
		b.WriteByte('\n')
	}

	errs, warns := r.Counts()
	fmt.Fprintf(&b, "\n%s\n%s\n%s\n", rule, bold("📊 VALIDATION SUMMARY"), rule)
	fmt.Fprintf(&b, "Total shows validated: %d\n", r.Records)
	fmt.Fprintf(&b, "Errors: %d\n", errs)
	fmt.Fprintf(&b, "Warnings: %d\n", warns)

	switch {
	case errs == 0 && warns == 0:
		fmt.Fprintf(&b, "\n%s\n", green("✅ All validation checks passed!"))
	case errs == 0:
		fmt.Fprintf(&b, "\n%s\n", green("✅ No errors found, but there are warnings to address."))
	default:
		fmt.Fprintf(&b, "\n%s\n", red("❌ Validation failed. Please fix the errors above."))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func paint(enabled bool, attrs ...color.Attribute) func(string) string {
	if !enabled {
		return func(s string) string { return s }
	}
	c := color.New(attrs...)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}
