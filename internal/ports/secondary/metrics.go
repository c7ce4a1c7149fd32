package secondary

import (
	"context"
	"time"
)

// MetricsRecorder receives the outcome of every service operation.
type MetricsRecorder interface {
	// Observe records one operation. success is false when the operation returned an error.
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}
