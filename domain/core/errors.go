package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Sample errors
	ErrInvalidSample    = errors.New("invalid sample")
	ErrInsufficientData = errors.New("insufficient data")
	ErrDegenerateSample = errors.New("degenerate sample")

	// Estimation and model errors
	ErrInvalidParameter = errors.New("invalid weibull parameter")
	ErrConvergence      = errors.New("estimation did not converge")

	// Lookup errors
	ErrNotFound           = errors.New("resource not found")
	ErrAssessmentNotFound = fmt.Errorf("%w: assessment", ErrNotFound)
)

// Error constructors with context
func NewNegativeSpeedError(index int, value float64) error {
	return fmt.Errorf("%w: negative speed %g at index %d", ErrInvalidSample, value, index)
}

func NewInsufficientDataError(n, required int) error {
	return fmt.Errorf("%w: have %d observations, need %d", ErrInsufficientData, n, required)
}

func NewDegenerateSampleError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateSample, reason)
}

func NewInvalidParameterError(k, c float64) error {
	return fmt.Errorf("%w: k=%g c=%g (both must be > 0)", ErrInvalidParameter, k, c)
}

func NewConvergenceError(iterations int, lastK float64) error {
	return fmt.Errorf("%w: %d iterations exhausted, last k=%g", ErrConvergence, iterations, lastK)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsSampleError(err error) bool {
	return errors.Is(err, ErrInvalidSample) ||
		errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrDegenerateSample)
}

func IsEstimationError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, ErrConvergence)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
