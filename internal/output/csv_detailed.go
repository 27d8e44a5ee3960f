package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fedcalc/internal/domain"
)

// CSVDetailedExporter exports the year-by-year schedules of every report.
// FERS reports have no schedule and contribute no rows.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(set *domain.ReportSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Account", "Year", "Age", "Contribution", "Match", "Growth", "EndingBalance", "HasMatch"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range set.Reports {
		for _, sched := range schedules(r) {
			for _, yr := range sched.rows {
				row := []string{
					r.Name,
					sched.account,
					intToString(yr.Year),
					intToString(yr.Age),
					formatCents(yr.Contribution),
					formatCents(yr.Match),
					formatCents(yr.Growth),
					formatCents(yr.EndingBalance),
					boolToString(sched.withMatch),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

type schedule struct {
	account   string
	rows      []domain.YearBalance
	withMatch bool
}

func schedules(r *domain.Report) []schedule {
	switch {
	case r.TSP != nil:
		return []schedule{{"tsp", r.TSP.Schedule, true}}
	case r.RothTraditional != nil:
		return []schedule{
			{"traditional", r.RothTraditional.TraditionalSchedule, false},
			{"roth", r.RothTraditional.RothSchedule, false},
		}
	}
	return nil
}
