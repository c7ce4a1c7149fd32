package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/example/keeper/internal/core/records"
	"github.com/example/keeper/internal/ports/secondary"
)

// Options carries the dependencies shared by the session services.
// Every field is optional.
type Options struct {
	Changes     secondary.ChangeLog
	Metrics     secondary.MetricsRecorder
	Logger      *zap.Logger
	MergePolicy records.MergePolicy
}

// instrumentation wraps the cross-cutting dependencies every service uses.
type instrumentation struct {
	variant string
	changes secondary.ChangeLog
	metrics secondary.MetricsRecorder
	logger  *zap.Logger
}

func newInstrumentation(variant string, opts Options) instrumentation {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return instrumentation{
		variant: variant,
		changes: opts.Changes,
		metrics: opts.Metrics,
		logger:  logger.With(zap.String("variant", variant)),
	}
}

// track starts timing an operation. Call the returned func with the
// operation's error when it finishes:
//
//	defer s.track(ctx, "filter")(&err)
func (i instrumentation) track(ctx context.Context, operation string) func(*error) {
	start := time.Now()
	name := i.variant + "." + operation
	return func(errp *error) {
		var err error
		if errp != nil {
			err = *errp
		}
		if i.metrics != nil {
			i.metrics.Observe(ctx, name, err == nil, time.Since(start))
		}
		if err != nil {
			i.logger.Debug("operation failed", zap.String("operation", name), zap.Error(err))
		}
	}
}

// logUpdate records a field change. History is best-effort: a failing
// change log never fails the operation that already succeeded.
func (i instrumentation) logUpdate(ctx context.Context, recordID, field, oldValue, newValue string) {
	i.logger.Info("record updated",
		zap.String("id", recordID),
		zap.String("field", field),
		zap.String("old", oldValue),
		zap.String("new", newValue))

	if i.changes == nil {
		return
	}
	if err := i.changes.LogUpdate(ctx, i.variant, recordID, field, oldValue, newValue); err != nil {
		i.logger.Warn("failed to record change", zap.String("id", recordID), zap.Error(err))
	}
}

// logMerge records every merged ID.
func (i instrumentation) logMerge(ctx context.Context, added, replaced []string) {
	if len(replaced) > 0 {
		i.logger.Warn("merge replaced existing records", zap.Strings("ids", replaced))
	}
	i.logger.Info("pending records merged", zap.Int("count", len(added)))

	if i.changes == nil {
		return
	}
	isReplaced := make(map[string]bool, len(replaced))
	for _, id := range replaced {
		isReplaced[id] = true
	}
	for _, id := range added {
		if err := i.changes.LogMerge(ctx, i.variant, id, isReplaced[id]); err != nil {
			i.logger.Warn("failed to record merge", zap.String("id", id), zap.Error(err))
		}
	}
}

func mergePolicy(p records.MergePolicy) records.MergePolicy {
	if p == "" {
		return records.MergeOverwrite
	}
	return p
}
