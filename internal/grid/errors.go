package grid

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and navigation.
var (
	ErrRowLength         = errors.New("rowLength must be positive")
	ErrPageSize          = errors.New("pageSize must be positive")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrEmpty             = errors.New("grid has no items")
)

// InvalidTransitionError reports an argument that is neither a known command
// nor an item in the collection. Input holds the serialized argument.
type InvalidTransitionError struct {
	Input string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid command or item (%s)", e.Input)
}

// Is lets errors.Is match ErrInvalidTransition.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func newInvalidTransition(arg any) *InvalidTransitionError {
	return &InvalidTransitionError{Input: serialize(arg)}
}

// serialize renders arg as JSON, falling back to %v for values that JSON
// cannot represent (channels, funcs, cyclic pointers).
func serialize(arg any) string {
	if b, err := json.Marshal(arg); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", arg)
}
