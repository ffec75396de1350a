package domain

import "errors"

// Admission errors.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrForbidden          = errors.New("access forbidden")
)

// Lookup errors.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrClientRequired = errors.New("client registration required first")
)

// Uniqueness conflicts.
var (
	ErrUserExists       = errors.New("username or email already registered")
	ErrClientExists     = errors.New("client already registered for this user")
	ErrPartnerExists    = errors.New("partner already registered under this client")
	ErrCompanyNameTaken = errors.New("company short name already in use")
)

// Workflow validation errors.
var (
	ErrPasswordMismatch = errors.New("current password is incorrect")
	ErrPasswordRetype   = errors.New("new passwords do not match")
	ErrNothingChanged   = errors.New("no fields to update")
	ErrUnknownRole      = errors.New("unknown role requested")
)
