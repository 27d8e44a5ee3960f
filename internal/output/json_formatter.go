package output

import (
	"encoding/json"

	"github.com/rpgo/fedcalc/internal/domain"
)

// JSONFormatter serializes the report set as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(set *domain.ReportSet) ([]byte, error) {
	return json.MarshalIndent(set, "", "  ")
}
