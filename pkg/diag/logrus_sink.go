package diag

import log "github.com/sirupsen/logrus"

// LogrusSink wraps another Sink and additionally emits every reported
// diagnostic through logrus at warning level, in the style of this
// codebase's CLI commands (e.g. "log.SetLevel(log.DebugLevel)" under
// --verbose).  Model construction itself always uses a plain Collector; the
// CLI replays the diagnostics it collected through a LogrusSink once
// construction has finished.
type LogrusSink struct {
	Inner Sink
}

// NewLogrusSink wraps inner with logrus reporting.
func NewLogrusSink(inner Sink) *LogrusSink {
	return &LogrusSink{inner}
}

// Error reports a single diagnostic, both to the wrapped sink and to logrus.
func (s *LogrusSink) Error(context, message string) {
	log.WithField("context", context).Warn(message)
	s.Inner.Error(context, message)
}

// ErrorCount returns the number of diagnostics reported so far.
func (s *LogrusSink) ErrorCount() int {
	return s.Inner.ErrorCount()
}
