package brewing

import (
	"errors"
	"fmt"
)

// DomainError is the base error type for all brewing domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// InvalidConfigError indicates bad constructor arguments for containers or policies.
// Construction fails entirely; no partially built object is ever returned.
type InvalidConfigError struct {
	*DomainError
}

func NewInvalidConfigError(message string) *InvalidConfigError {
	return &InvalidConfigError{DomainError: &DomainError{Message: message}}
}

// InvalidOperationError indicates a caller mistake such as a non-positive
// consume or refill amount. Container state is never touched.
type InvalidOperationError struct {
	*DomainError
}

func NewInvalidOperationError(message string) *InvalidOperationError {
	return &InvalidOperationError{DomainError: &DomainError{Message: message}}
}

// InsufficientResourceError indicates a consume requested more than available.
// The rejection is atomic: container state is unchanged.
type InsufficientResourceError struct {
	*DomainError
	Resource  Resource
	Required  int
	Available int
}

func NewInsufficientResourceError(resource Resource, required, available int) *InsufficientResourceError {
	return &InsufficientResourceError{
		DomainError: &DomainError{
			Message: fmt.Sprintf("not enough %s: need %d, have %d", resource, required, available),
		},
		Resource:  resource,
		Required:  required,
		Available: available,
	}
}

// InvalidRecipeError indicates recipe fields out of bounds; construction aborted
type InvalidRecipeError struct {
	*DomainError
}

func NewInvalidRecipeError(message string) *InvalidRecipeError {
	return &InvalidRecipeError{DomainError: &DomainError{Message: message}}
}

var (
	// ErrNoRecipeSelected indicates brew was attempted with no active recipe
	ErrNoRecipeSelected = errors.New("no recipe selected")

	// ErrRecipeNotFound indicates the catalog has no recipe with the requested name
	ErrRecipeNotFound = errors.New("recipe not found")
)
