package enumkit

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by lookup and validation operations.
// These errors can be used with errors.Is() for error checking.
//
// The message text is part of the package contract: callers that surface these
// messages to users rely on the exact wording.
var (
	// ErrEnumRequired indicates the mapping argument was missing, nil, or not
	// a string-keyed mapping at all.
	ErrEnumRequired = errors.New("The enum object is required.")

	// ErrInvalidValue is the match target for InvalidValueError. Use
	// errors.Is(err, ErrInvalidValue) to detect a disallowed value type
	// without caring about the offending value itself.
	ErrInvalidValue = errors.New("invalid enum value")

	// ErrNonUniqueValueByValue indicates more than one enum value matched the
	// input of a singular value lookup.
	ErrNonUniqueValueByValue = errors.New("Enum values are not unique. Cannot get value by value.")

	// ErrNonUniqueValueByKey indicates more than one enum key matched the
	// input of a singular value-by-key lookup.
	ErrNonUniqueValueByKey = errors.New("Enum keys are not unique. Cannot get value by key.")

	// ErrNonUniqueKeyByKey indicates more than one enum key matched the input
	// of a singular key lookup.
	ErrNonUniqueKeyByKey = errors.New("Enum keys are not unique. Cannot get key by key.")

	// ErrNonUniqueKeyByValue indicates more than one enum value matched the
	// input of a singular key-by-value lookup.
	ErrNonUniqueKeyByValue = errors.New("Enum values are not unique. Cannot get key by value.")
)

// InvalidValueError reports a mapping entry whose value is neither a string
// nor a number. The structural validator raises it before any lookup logic
// runs, so a single bad entry invalidates the whole mapping.
type InvalidValueError struct {
	// Value is the offending entry value.
	Value any
}

// Error implements the error interface, including the offending value's
// string form in the message.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid enum value: %v. Expected string or number.", e.Value)
}

// Is reports whether target matches this error, allowing
// errors.Is(err, ErrInvalidValue) alongside direct type assertions.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}
