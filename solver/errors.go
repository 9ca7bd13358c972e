// Package solver exposes Entry A, the in-memory SALBP-1 solve (spec.md §6),
// orchestrating the five-stage pipeline of internal/{taskgraph, closure,
// cocomp, frontier, bibfs, station}.
package solver

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a solve failure into one of spec.md §7's error
// categories, used by callers (in particular the CLI adapter) to pick a
// distinct process exit code per category, as the original C's
// solve_instance return codes (-1..-7) did.
type ErrorKind int

const (
	// KindInvalidInstance covers parse/validation failures: n <= 0,
	// cycle_time <= 0, a task id out of range, or a cyclic precedence set.
	KindInvalidInstance ErrorKind = iota + 1
	// KindAllocationFailure covers any stage's internal allocation error
	// (matrix shape/bounds violations that should be unreachable given a
	// validated instance, surfaced defensively rather than panicking).
	KindAllocationFailure
	// KindSourceNotFound indicates the {source} singleton frontier is
	// absent from the frontier list.
	KindSourceNotFound
	// KindSinkNotFound indicates the {sink} singleton frontier is absent
	// from the frontier list.
	KindSinkNotFound
	// KindNoPath indicates the bidirectional BFS terminated without a
	// meeting index.
	KindNoPath
)

// String renders the kind's name, used in Error.Error().
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInstance:
		return "invalid-instance"
	case KindAllocationFailure:
		return "allocation-failure"
	case KindSourceNotFound:
		return "source-not-found"
	case KindSinkNotFound:
		return "sink-not-found"
	case KindNoPath:
		return "no-path"
	default:
		return "unknown"
	}
}

// Error wraps an ErrorKind with the underlying cause, matched via errors.Is
// against the package's sentinel errors and via errors.As for the Kind
// itself.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("solver: %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Sentinel errors for invalid-instance conditions raised directly by Solve
// before any stage runs.
var (
	// ErrNoTasks indicates n <= 0.
	ErrNoTasks = errors.New("solver: n must be >= 1")

	// ErrNonPositiveCycleTime indicates cycle_time <= 0.
	ErrNonPositiveCycleTime = errors.New("solver: cycle_time must be > 0")
)

// KindOf extracts the ErrorKind from err if it is (or wraps) a *Error,
// returning (0, false) otherwise.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}
