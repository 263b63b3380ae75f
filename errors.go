package cetane

import "fmt"

// ErrorKind is the closed set of failure categories a caller might want to
// switch on, distinguishing malformed input (duplicate name, missing
// dependency, cycle) from operations the IR cannot support (not reversible).
type ErrorKind int

const (
	KindDuplicateName ErrorKind = iota
	KindMissingDependency
	KindCycle
	KindNotReversible
	KindExecutorError
	KindStateStoreError
	KindUnsupportedOperation
)

func (k ErrorKind) String() string {
	switch k {
	case KindDuplicateName:
		return "duplicate_name"
	case KindMissingDependency:
		return "missing_dependency"
	case KindCycle:
		return "cycle"
	case KindNotReversible:
		return "not_reversible"
	case KindExecutorError:
		return "executor_error"
	case KindStateStoreError:
		return "state_store_error"
	case KindUnsupportedOperation:
		return "unsupported_operation"
	default:
		return "unknown"
	}
}

// Error is cetane's single error type. Every failure produced by this
// package can be type-asserted to *Error and switched on by Kind. Nodes
// carries the residual set for Cycle errors.
type Error struct {
	Kind    ErrorKind
	Message string
	Nodes   []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cetane: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("cetane: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func duplicateNameErr(name string) *Error {
	return newError(KindDuplicateName, fmt.Sprintf("migration %q already registered", name))
}

func missingDependencyErr(from, missing string) *Error {
	return newError(KindMissingDependency, fmt.Sprintf("migration %q depends on unregistered migration %q", from, missing))
}

func cycleErr(nodes []string) *Error {
	e := newError(KindCycle, fmt.Sprintf("dependency cycle among migrations: %v", nodes))
	e.Nodes = nodes
	return e
}

func notReversibleErr(migration string, operationIndex int) *Error {
	return newError(KindNotReversible, fmt.Sprintf("migration %q operation %d has no reverse", migration, operationIndex))
}

func executorErr(err error) *Error {
	return wrapError(KindExecutorError, "executor callback failed", err)
}

func stateStoreErr(err error) *Error {
	return wrapError(KindStateStoreError, "state store operation failed", err)
}

func unsupportedOperationErr(backend Name, operation string) *Error {
	return newError(KindUnsupportedOperation, fmt.Sprintf("backend %q does not support %s", backend, operation))
}
