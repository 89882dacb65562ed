// Package errors provides structured error handling and reporting for the
// observe framework.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRegister indicates an invalid observer registration.
	KindRegister
	// KindNotify indicates a failure while delivering a notification.
	KindNotify
	// KindDispatch indicates a failure while marshaling onto an executor.
	KindDispatch
	// KindSchema indicates an invalid model schema.
	KindSchema
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRegister:
		return "register"
	case KindNotify:
		return "notify"
	case KindDispatch:
		return "dispatch"
	case KindSchema:
		return "schema"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ObserveError represents a structured error in the observe framework.
type ObserveError struct {
	// Op is the operation that failed (e.g., "model.Notify").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Prop is the observable property name, if applicable.
	Prop string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ObserveError) Error() string {
	if e.Prop != "" {
		return fmt.Sprintf("%s [%s] prop=%s: %v", e.Op, e.Kind, e.Prop, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ObserveError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "dispatch.Loop").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// SchemaError represents an invalid declaration in a model schema.
type SchemaError struct {
	// File is the schema file path, if known.
	File string
	// Model is the model name the declaration belongs to.
	Model string
	// Field is the offending property name, if any.
	Field string
	// Reason describes what is wrong with the declaration.
	Reason string
}

func (e *SchemaError) Error() string {
	msg := "invalid schema"
	if e.File != "" {
		msg = fmt.Sprintf("invalid schema %s", e.File)
	}
	if e.Model != "" {
		msg += fmt.Sprintf(": model %q", e.Model)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": property %q", e.Field)
	}
	return msg + ": " + e.Reason
}

// ErrorHandler receives errors reported by the observe framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ObserveError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
