package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/fedcalc/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(set *domain.ReportSet) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CALCULATOR SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, r := range set.Reports {
		fmt.Fprintf(&buf, "%s [%s]: %s\n", r.Name, r.Calculator, Verdict(r))
		for _, m := range KeyMetrics(r) {
			fmt.Fprintf(&buf, "  %s=%s\n", m.Label, m.Text)
		}
		if r.HasWarnings() {
			fmt.Fprintf(&buf, "  Warnings=%d\n", len(r.Warnings))
		}
	}
	return buf.Bytes(), nil
}
