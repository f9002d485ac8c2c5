package paywire

import (
	"errors"
	"fmt"
)

var (
	ErrNoProvider  = errors.New("paywire: provider is required")
	ErrNoNamespace = errors.New("paywire: namespace is required")
	ErrEmptyID     = errors.New("paywire: empty payment id")
)

// StoreError reports which store operation failed and for which payment id.
type StoreError struct {
	Op  string // "put", "get", "delete"
	ID  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("paywire: %s %q: %v", e.Op, e.ID, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
