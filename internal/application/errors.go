package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotLoaded      = errors.New("catalog not loaded")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNothingToRedo  = errors.New("nothing to redo")
	ErrNoSuchPosition = errors.New("no such position")
	ErrStaleRestore   = errors.New("restore no longer matches the stack")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// WriteError reports a failed sidecar write for one record. The batch
// it belongs to keeps going; callers collect these per operation.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to save tags for %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// PositionError reports an out-of-range record position.
type PositionError struct {
	Position int
	Count    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d out of range (catalog has %d records)", e.Position, e.Count)
}

func (e *PositionError) Is(target error) bool {
	return target == ErrNoSuchPosition
}
