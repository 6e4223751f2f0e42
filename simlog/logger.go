package simlog

import "go.uber.org/zap"

// Logger wraps a *zap.Logger for the simulation domain.
type Logger struct {
	z *zap.Logger
}

// New wraps an existing *zap.Logger. Passing nil is equivalent to
// NewNop.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// NewNop returns a Logger that discards everything, used as the
// Scheduler's default when no logger is configured.
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// NewProduction builds a Logger backed by zap's production JSON
// encoder config, for cmd/parkingsim's default wiring.
func NewProduction() (*Logger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

// Debug logs per-tick plan/conflict detail.
func (l *Logger) Debug(tick int, msg string, fields ...zap.Field) {
	l.z.Debug(msg, append([]zap.Field{zap.Int("tick", tick)}, fields...)...)
}

// Info logs lifecycle events (spawn, park, exit, wake-up).
func (l *Logger) Info(tick int, msg string, fields ...zap.Field) {
	l.z.Info(msg, append([]zap.Field{zap.Int("tick", tick)}, fields...)...)
}

// Warn logs failure-escalation events (spec.md §4.5.3).
func (l *Logger) Warn(tick int, msg string, fields ...zap.Field) {
	l.z.Warn(msg, append([]zap.Field{zap.Int("tick", tick)}, fields...)...)
}

// Error logs InvariantViolation diagnostics (spec.md §7). Never called
// for PlanFailure/BlockedMove, which are expected conditions.
func (l *Logger) Error(tick int, msg string, fields ...zap.Field) {
	l.z.Error(msg, append([]zap.Field{zap.Int("tick", tick)}, fields...)...)
}

// CarField attaches a car id to a log entry.
func CarField(id int) zap.Field { return zap.Int("car_id", id) }

// EventField attaches an event-kind label to a log entry.
func EventField(kind string) zap.Field { return zap.String("event", kind) }

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error { return l.z.Sync() }
