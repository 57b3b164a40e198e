package shellnet

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables, and can be compared against the result
// of errors.Cause() from "github.com/pkg/errors".
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	// ErrConstruction is the cause of every error returned by New.
	ErrConstruction = Error{"Network cannot be constructed"}

	// ErrInvalidInput is the cause of every error from Forward or Backward, given a vector with the
	// wrong length.
	ErrInvalidInput = Error{"Vector length does not match the Network"}

	// ErrDataExhausted is returned by DataSuppliers once they have no more samples to give.
	ErrDataExhausted = Error{"No more training data"}
)

// ConstructionError documents why a Network could not be built from the Topology and
// Hyperparameters it was given. Its cause is always ErrConstruction.
type ConstructionError struct {
	Reason string
}

func (err ConstructionError) Error() string {
	return "Can't construct Network: " + err.Reason
}

// Cause allows errors.Cause() to unwrap to ErrConstruction
func (err ConstructionError) Cause() error {
	return ErrConstruction
}

// SizeMismatchError is returned when a vector given to the Network does not have the length of
// the layer it is meant for. Its cause is always ErrInvalidInput.
type SizeMismatchError struct {
	Expected, Got int

	// Kind is either "inputs" or "targets"
	Kind string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Number of %s does not match Network (expected %d, got %d)", err.Kind, err.Expected, err.Got)
}

// Cause allows errors.Cause() to unwrap to ErrInvalidInput
func (err SizeMismatchError) Cause() error {
	return ErrInvalidInput
}

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}
