package models

import "fmt"

// Normalization errors. Each one aborts the refresh cycle that produced it;
// none are downgraded to a default value.

// MissingFieldError reports a required feed field that was absent or null.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing response field: %s", e.Field)
}

// MalformedValueError reports a feed field that was present but not of the
// expected shape.
type MalformedValueError struct {
	Path     string
	Expected string
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("malformed value at %s: expected %s", e.Path, e.Expected)
}

// UnknownVehicleCodeError reports a vehicle-type code outside the fixed
// mapping table.
type UnknownVehicleCodeError struct {
	Code string
}

func (e *UnknownVehicleCodeError) Error() string {
	return fmt.Sprintf("unknown vehicle type code %q", e.Code)
}
