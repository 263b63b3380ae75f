package cetane

// Logger is the narrow logging sink the migrator and generator consult for
// a handful of non-fatal cases worth surfacing: an index filter silently
// dropped on a backend without partial-index support, or a RunSql step
// with no entry for the current backend's Portable map. A nil Logger is
// always safe to use — every call site in this package guards against it.
// See the driver subpackage for a github.com/oarkflow/log-backed
// implementation.
type Logger interface {
	Warnf(format string, args ...any)
}

func warnf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.Warnf(format, args...)
}
