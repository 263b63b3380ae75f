package driver

import "github.com/oarkflow/log"

// Logging adapts github.com/oarkflow/log's structured logger to
// cetane.Logger, so a Migrator can log the framework's documented
// optional warnings (dropped partial-index filters, portable RunSql
// no-ops) through the same structured sink the rest of a service uses.
type Logging struct {
	logger log.Logger
}

// NewLogging wraps an existing oarkflow/log logger.
func NewLogging(logger log.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}
