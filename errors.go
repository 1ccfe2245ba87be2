package tabview

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPageSize is returned when a page size is not in the allowed set.
	ErrInvalidPageSize = errors.New("page size not allowed")

	// ErrEmptyPageSizes is returned when no allowed page sizes are configured.
	ErrEmptyPageSizes = errors.New("no page sizes configured")

	// ErrUnknownField is returned when a control names a field outside the schema.
	ErrUnknownField = errors.New("unknown field")

	// ErrNilStore is returned when a pipeline is created without a store.
	ErrNilStore = errors.New("store is nil")
)

// ErrDerive indicates a failure contained while deriving a result.
//
// The view stays usable: a sort failure falls back to the unsorted order and
// any other failure renders an empty page. If the failure carried an error it
// can be accessed via errors.Unwrap.
type ErrDerive struct {
	Stage string
	Value any
	cause error
}

func (e *ErrDerive) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Value)
}

func (e *ErrDerive) Unwrap() error { return e.cause }

func newErrDerive(stage string, r any) *ErrDerive {
	e := &ErrDerive{Stage: stage, Value: r}
	if err, ok := r.(error); ok {
		e.cause = err
	}
	return e
}

func invalidPageSize(size int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
}

func unknownField(field string) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}
