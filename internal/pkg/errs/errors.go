package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is.
// Every concrete error type in this package unwraps to one of these.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
)

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required value
// with an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrValueIsRequired
}

// Is reports whether the error matches the ErrValueIsRequired sentinel.
func (e *ValueIsRequiredError) Is(target error) bool {
	return errors.Is(target, ErrValueIsRequired)
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// with an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrValueIsInvalid
}

// Is reports whether the error matches the ErrValueIsInvalid sentinel.
func (e *ValueIsInvalidError) Is(target error) bool {
	return errors.Is(target, ErrValueIsInvalid)
}

// ValueIsOutOfRangeError indicates that a value is outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for an out-of-range value.
func NewValueIsOutOfRangeError(paramName string, value any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value}
}

// NewValueIsOutOfRangeErrorWithCause creates an error for an out-of-range value
// with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v: %s", ErrValueIsOutOfRange, e.ParamName, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %v", ErrValueIsOutOfRange, e.ParamName, e.Value)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrValueIsOutOfRange
}

// Is reports whether the error matches the ErrValueIsOutOfRange sentinel.
func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return errors.Is(target, ErrValueIsOutOfRange)
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ObjectName string
	ID         any
	Cause      error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(objectName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectName: objectName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// with an underlying cause.
func NewObjectNotFoundErrorWithCause(objectName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectName: objectName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (id: %v): %s", ErrObjectNotFound, e.ObjectName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s (id: %v)", ErrObjectNotFound, e.ObjectName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrObjectNotFound
}

// Is reports whether the error matches the ErrObjectNotFound sentinel.
func (e *ObjectNotFoundError) Is(target error) bool {
	return errors.Is(target, ErrObjectNotFound)
}
