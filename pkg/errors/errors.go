package errors

import (
	"errors"
	"fmt"
)

// ConnectionError indicates the store could not be reached or the
// connection handshake failed. Callers use it to distinguish "no data"
// from "could not reach the store".
type ConnectionError struct {
	cause error
}

func NewConnectionError(cause error) *ConnectionError {
	return &ConnectionError{cause: cause}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("store connection failed: %v", e.cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.cause
}

func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// QueryError indicates a statement failed after a connection was
// established (malformed SQL, constraint violation, scan failure).
type QueryError struct {
	op    string
	cause error
}

func NewQueryError(op string, cause error) *QueryError {
	return &QueryError{op: op, cause: cause}
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s failed: %v", e.op, e.cause)
}

func (e *QueryError) Unwrap() error {
	return e.cause
}

func IsQueryError(err error) bool {
	var qe *QueryError
	return errors.As(err, &qe)
}

// NotFoundError indicates the targeted record does not exist.
type NotFoundError struct {
	resource string
	id       any
}

func NewNotFoundError(resource string, id any) *NotFoundError {
	return &NotFoundError{resource: resource, id: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.resource, e.id)
}

func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ExportError wraps a failure during report generation. The message is
// safe to surface to the shell as the failure signal payload.
type ExportError struct {
	kind  string
	cause error
}

func NewExportError(kind string, cause error) *ExportError {
	return &ExportError{kind: kind, cause: cause}
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s export failed: %v", e.kind, e.cause)
}

func (e *ExportError) Unwrap() error {
	return e.cause
}

func IsExportError(err error) bool {
	var ee *ExportError
	return errors.As(err, &ee)
}
