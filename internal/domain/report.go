package domain

import "time"

// Report bundles one calculator run: the input that was used, the result,
// and any input warnings.
type Report struct {
	Name        string      `json:"name"`
	Calculator  Kind        `json:"calculator"`
	GeneratedAt time.Time   `json:"generated_at"`
	Warnings    []Violation `json:"warnings,omitempty"`

	TSPInput             *TSPInput              `json:"tsp_input,omitempty"`
	TSP                  *TSPResult             `json:"tsp,omitempty"`
	RothTraditionalInput *RothTraditionalInput  `json:"roth_traditional_input,omitempty"`
	RothTraditional      *RothTraditionalResult `json:"roth_traditional,omitempty"`
	FERSInput            *FERSInput             `json:"fers_input,omitempty"`
	FERS                 *FERSResult            `json:"fers,omitempty"`
}

// HasWarnings reports whether validation flagged any input.
func (r *Report) HasWarnings() bool { return len(r.Warnings) > 0 }

// ReportSet is the result of running a batch scenario file.
type ReportSet struct {
	GeneratedAt time.Time `json:"generated_at"`
	Reports     []*Report `json:"reports"`
}
