package domain

import (
	"errors"
	"fmt"
)

type (
	// ValidationError reports missing or malformed input.
	ValidationError struct {
		Field  string
		Reason string
	}

	NotFoundError struct {
		Resource string
	}

	ConflictError struct {
		Reason string
	}

	// UpstreamError wraps a failure of an external collaborator such as the
	// recipe generator. The resolution pipeline recovers from it locally.
	UpstreamError struct {
		Service string
		Err     error
	}

	// PersistenceError wraps a failed store read or write.
	PersistenceError struct {
		Op  string
		Err error
	}
)

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *ConflictError) Error() string {
	return e.Reason
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func NewUpstreamError(service string, err error) error {
	return &UpstreamError{Service: service, Err: err}
}

// NewPersistenceError wraps err unless it already belongs to the taxonomy.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsTaxonomyError(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func IsTaxonomyError(err error) bool {
	var (
		v *ValidationError
		n *NotFoundError
		c *ConflictError
		u *UpstreamError
		p *PersistenceError
	)
	return errors.As(err, &v) || errors.As(err, &n) || errors.As(err, &c) ||
		errors.As(err, &u) || errors.As(err, &p)
}
