package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("ledger: invalid transaction")
	ErrNotFound        = errors.New("ledger: transaction not found")
	ErrNotLoaded       = errors.New("ledger: store not loaded")
	ErrIndexOutOfRange = errors.New("ledger: index out of range")
)

// ValidationError reports a bad field on add or edit. No mutation happened.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports an edit or delete of an unknown id. No mutation happened.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageDecodeError reports stored bytes that are not a valid ledger.
type StorageDecodeError struct {
	Key string
	Err error
}

func (e *StorageDecodeError) Error() string {
	return fmt.Sprintf("decode stored ledger %q: %v", e.Key, e.Err)
}

func (e *StorageDecodeError) Unwrap() error {
	return e.Err
}

// PersistError reports a failed write. The mutation that triggered it was rolled back.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist ledger %q: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
