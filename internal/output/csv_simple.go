package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fedcalc/internal/domain"
)

// CSVSummarizer implements the summary CSV output: one row per headline
// metric of each report, in report order.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(set *domain.ReportSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Calculator", "Metric", "Value", "Warnings"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range set.Reports {
		warnings := intToString(len(r.Warnings))
		for _, m := range KeyMetrics(r) {
			row := []string{r.Name, string(r.Calculator), m.Label, formatCents(m.Value), warnings}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
