package recorder

import (
	"context"
	"time"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordCalculation(_ context.Context, _ *CalculationEvent) error { return nil }
func (n *NoopRecorder) Prune(_ context.Context, _ time.Time) (int64, error)          { return 0, nil }
func (n *NoopRecorder) Close() error                                                { return nil }
