package metrics

import (
	"context"
	"time"
)

// Collector records one sample per status cycle.
type Collector interface {
	Record(ctx context.Context, sample *Sample) error
}

// Repository defines the interface for sample storage
type Repository interface {
	Store(ctx context.Context, sample *Sample) error
}

// Sample is what one cycle read and published.
type Sample struct {
	Timestamp   time.Time
	Power       PowerMetrics
	Temperature TempMetrics
	StatusLine  string
}

type PowerMetrics struct {
	ACState string
	Percent int
}

type TempMetrics struct {
	Celsius int
	Found   bool
}
