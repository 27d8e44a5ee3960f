// Package recorder keeps anonymous usage counts for the calculators. Inputs
// and results are never stored.
package recorder

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpgo/fedcalc/internal/domain"
)

// Source identifies which surface ran a calculation.
type Source string

const (
	SourceForm Source = "form"
	SourceAPI  Source = "api"
	SourceCLI  Source = "cli"
)

// CalculationEvent records that a calculation ran.
type CalculationEvent struct {
	ID           uuid.UUID
	Calculator   domain.Kind
	Source       Source
	WarningCount int
	Duration     time.Duration
	At           time.Time
}

// NewCalculationEvent builds an event for report, stamped with a fresh ID.
func NewCalculationEvent(r *domain.Report, source Source, took time.Duration) *CalculationEvent {
	return &CalculationEvent{
		ID:           uuid.New(),
		Calculator:   r.Calculator,
		Source:       source,
		WarningCount: len(r.Warnings),
		Duration:     took,
		At:           r.GeneratedAt,
	}
}

// Recorder persists calculation events.
type Recorder interface {
	RecordCalculation(ctx context.Context, evt *CalculationEvent) error
	// Prune deletes events older than cutoff and returns how many were removed.
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}
