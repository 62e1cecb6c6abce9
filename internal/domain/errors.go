package domain

import (
	"fmt"
	"strings"
)

// UnknownStageError reports a stage symbol that no catalog recognises.
type UnknownStageError struct {
	Value string
}

func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("unknown stage %q", e.Value)
}

// InvalidTransitionError reports a move the transition rules reject. Allowed
// lists the legal next stages from From so callers can offer them instead.
type InvalidTransitionError struct {
	From    Stage
	To      Stage
	Allowed []Stage
}

func (e *InvalidTransitionError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = s.String()
	}
	allowed := "none"
	if len(names) > 0 {
		allowed = strings.Join(names, ", ")
	}
	return fmt.Sprintf("invalid transition %s -> %s (allowed: %s)", e.From, e.To, allowed)
}

// ValidationError reports bad caller input detected before any state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ConcurrentModificationError reports that the application changed between
// load and commit. The caller should reload and decide whether to retry.
type ConcurrentModificationError struct {
	ApplicationID   string
	ExpectedVersion int64
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("application %s was modified concurrently (expected version %d)", e.ApplicationID, e.ExpectedVersion)
}

var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }
