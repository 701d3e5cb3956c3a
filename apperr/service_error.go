// Package apperr tags errors with the service and operation they came from.
package apperr

import "fmt"

// ServiceError carries the service and operation an error came from.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error formats as: [Service.Operation] error message
func (e *ServiceError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the original error for errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// WrapError adds service context to err. A nil err stays nil.
func WrapError(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
