package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is one field→message pair reported by request validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed a schema, in declaration order.
type ValidationError struct {
	Fields []FieldError
	Msg    string
	Err    error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if len(e.Fields) == 0 {
		return "validation error"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return strings.Join(parts, "; ")
}

func (e ValidationError) Unwrap() error { return e.Err }

// NewFieldError is a shortcut for a single-field ValidationError.
func NewFieldError(field, msg string) ValidationError {
	return ValidationError{Fields: []FieldError{{Field: field, Message: msg}}}
}

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnauthorizedError is returned when submitted credentials do not match.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

// StoreError wraps a persistence failure that is not a not-found or a conflict.
type StoreError struct {
	Entity    string
	Operation string
	Err       error
}

func (e StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Operation, e.Entity)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Operation, e.Entity, e.Err)
}

func (e StoreError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}

// ValidationFields returns the field list of a wrapped ValidationError, or nil.
func ValidationFields(err error) []FieldError {
	var target ValidationError
	if errors.As(err, &target) {
		return target.Fields
	}
	return nil
}
