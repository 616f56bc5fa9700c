package entity

import "errors"

var (
	ErrLeadNotFound         = errors.New("lead not found")
	ErrDuplicateLead        = errors.New("lead already exists")
	ErrInvalidStatus        = errors.New("invalid mandate level")
	ErrInvalidRole          = errors.New("invalid desk role")
	ErrUnauthorized         = errors.New("settlement-level status changes require Asset Manager or Principal approval")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)
