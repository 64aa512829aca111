package catalog

import (
	"errors"
)

var (
	// ErrNotFound means the catalog has no such entity.
	ErrNotFound = errors.New("not found in catalog")
	// ErrUpstreamUnavailable wraps network, status and decode failures.
	ErrUpstreamUnavailable = errors.New("catalog unavailable")
)

// Outcome is the typed result of a catalog call.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeEmpty
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeEmpty:
		return "empty"
	default:
		return "failed"
	}
}

// Classify maps the error of a catalog call to its outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrNotFound):
		return OutcomeEmpty
	default:
		return OutcomeFailed
	}
}
