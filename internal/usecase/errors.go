package usecase

import (
	"errors"

	"github.com/xavierca1/nexus-prive/internal/entity"
)

const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeLeadNotFound         = "LEAD_NOT_FOUND"
	CodeDuplicateLead        = "DUPLICATE_LEAD"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeInvalidRole          = "INVALID_ROLE"
	CodeTransitionNotAllowed = "TRANSITION_NOT_ALLOWED"
	CodeViewForbidden        = "VIEW_FORBIDDEN"
	CodeInvalidFilter        = "INVALID_FILTER"

	CodeStoreFailure     = "STORE_FAILURE"
	CodeGenerationFailed = "GENERATION_FAILED"
)

// DomainError is a rule violation the caller can correct.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error { return e.Err }

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// classify wraps repository and policy errors. Unknown errors are
// treated as store failures.
func classify(err error) error {
	if err == nil || IsDomainError(err) || IsTechnicalError(err) {
		return err
	}

	domain := func(code string) error {
		return &DomainError{Code: code, Message: err.Error(), Err: err}
	}

	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		return domain(CodeLeadNotFound)
	case errors.Is(err, entity.ErrDuplicateLead):
		return domain(CodeDuplicateLead)
	case errors.Is(err, entity.ErrUnauthorized):
		return domain(CodeUnauthorized)
	case errors.Is(err, entity.ErrInvalidStatus):
		return domain(CodeInvalidStatus)
	case errors.Is(err, entity.ErrInvalidRole):
		return domain(CodeInvalidRole)
	case errors.Is(err, entity.ErrTransitionNotAllowed):
		return domain(CodeTransitionNotAllowed)
	}

	return &TechnicalError{Code: CodeStoreFailure, Message: "lead store unavailable", Err: err}
}
