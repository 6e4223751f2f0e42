// Package simlog is a thin structured-logging wrapper around
// go.uber.org/zap, adding only the fields the simulation domain needs:
// tick number, car id, and event kind.
//
// What: Logger wraps a *zap.Logger and exposes Debug/Info/Warn/Error
// helpers that always attach a "tick" field, mirroring how
// viamrobotics-rdk/logging wraps an underlying logger with domain
// fields rather than calling zap directly from business code.
//
// Why: keeping the wrapper thin (no level enum, no network appenders)
// matches what the simulation core actually needs: Info for lifecycle
// events, Warn for escalation events, and Error for invariant
// violations and malformed plan requests. The simulation core emits no
// Debug entries. It never panics on expected conditions: PlanFailure
// and BlockedMove are not logged themselves, only the Warn-level
// escalations they trigger.
package simlog
