// Package businessflow contains the core business logic and use cases for ship registry operations
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Ship lookup errors
	ErrShipNotFound  = errors.New("ship not found")
	ErrInvalidShipID = errors.New("ship id must be a positive integer")

	// Create-time required fields
	ErrShipNameRequired     = errors.New("ship name is required")
	ErrShipPlanetRequired   = errors.New("ship planet is required")
	ErrShipTypeRequired     = errors.New("ship type is required")
	ErrShipProdDateRequired = errors.New("ship production date is required")
	ErrShipSpeedRequired    = errors.New("ship speed is required")
	ErrShipCrewSizeRequired = errors.New("ship crew size is required")

	// Field range errors (create and update)
	ErrShipNameInvalid    = errors.New("ship name must be between 1 and 50 characters")
	ErrShipPlanetInvalid  = errors.New("ship planet must be between 1 and 50 characters")
	ErrShipTypeInvalid    = errors.New("ship type is not a known type tag")
	ErrProdYearOutOfRange = errors.New("production year must be between 2800 and 3019")
	ErrSpeedOutOfRange    = errors.New("speed must be between 0.01 and 0.99")
	ErrCrewSizeOutOfRange = errors.New("crew size must be between 1 and 9999")

	// Filter errors
	ErrSortFieldInvalid = errors.New("sort field is not supported")
	ErrInvalidPage      = errors.New("page number must not be negative")
	ErrInvalidPageSize  = errors.New("page size must be positive")
)

// shipValidationErrors lists every error that maps to a bad request
var shipValidationErrors = []error{
	ErrInvalidShipID,
	ErrShipNameRequired,
	ErrShipPlanetRequired,
	ErrShipTypeRequired,
	ErrShipProdDateRequired,
	ErrShipSpeedRequired,
	ErrShipCrewSizeRequired,
	ErrShipNameInvalid,
	ErrShipPlanetInvalid,
	ErrShipTypeInvalid,
	ErrProdYearOutOfRange,
	ErrSpeedOutOfRange,
	ErrCrewSizeOutOfRange,
	ErrSortFieldInvalid,
	ErrInvalidPage,
	ErrInvalidPageSize,
}

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func IsShipNotFound(err error) bool {
	return errors.Is(err, ErrShipNotFound)
}

func IsInvalidShipID(err error) bool {
	return errors.Is(err, ErrInvalidShipID)
}

// IsShipValidationError reports whether the error is any bad-request kind
func IsShipValidationError(err error) bool {
	for _, target := range shipValidationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
