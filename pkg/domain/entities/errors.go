package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrParse reports a field that could not be parsed into its type
	ErrParse        = errors.New("parse error")
	// ErrRange reports a parsed value outside its allowed bounds
	ErrRange        = errors.New("range error")
	// ErrBusinessRule reports a cross-field or cross-entity rule violation
	ErrBusinessRule = errors.New("business rule violation")
	// ErrNotFound reports a lookup with no match
	ErrNotFound     = errors.New("not found")
	// ErrWrongSource reports a source-specific setter used on the other source kind
	ErrWrongSource  = errors.New("wrong part source")
)

// Field names reported by validation errors
const (
	FieldID       = "id"
	FieldName     = "name"
	FieldStock    = "stock"
	FieldPrice    = "price"
	FieldMax      = "max"
	FieldMin      = "min"
	FieldMachine  = "machineId"
	FieldCompany  = "companyName"
	FieldParts    = "associatedParts"
	FieldSource   = "source"
	FieldAction   = "action"
	FieldProduct  = "product"
	FieldSelected = "selection"
)

// ValidationError is the single human-readable failure of a rejected edit
type ValidationError struct {
	Field   string
	Kind    error
	Message string
}

// NewValidationError creates a ValidationError of the given kind
func NewValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes the taxonomy sentinel so errors.Is(err, ErrRange) works
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// KindName returns the taxonomy name used in reports
func (e *ValidationError) KindName() string {
	switch {
	case errors.Is(e.Kind, ErrParse):
		return "ParseError"
	case errors.Is(e.Kind, ErrRange):
		return "RangeError"
	case errors.Is(e.Kind, ErrBusinessRule):
		return "BusinessRuleError"
	case errors.Is(e.Kind, ErrNotFound):
		return "NotFoundError"
	default:
		return "Error"
	}
}
