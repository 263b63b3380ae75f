// Package cetane is a schema-migration framework, not a runner: it lowers a
// typed, declarative set of schema operations into dialect-specific SQL,
// derives reverse operations where possible, orders migrations by their
// declared dependencies, and drives forward/backward application against a
// caller-supplied executor and state store.
//
// Concrete database drivers, CLI tooling and config-file loading live
// outside the core (see the driver subpackage for reference
// implementations); cetane itself only ever emits SQL strings and calls
// callbacks the caller supplies.
package cetane
