package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user is inactive")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrRemitoNotFound      = errors.New("remito not found")
	ErrRemitoDelivered     = errors.New("remito already delivered")
	ErrTicketNotFound      = errors.New("support ticket not found")
	ErrMovementNotFound    = errors.New("movement not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCodeIndexOutOfRange = errors.New("code index out of range")
	ErrInvalidWindow       = errors.New("invalid dispatch window")
	ErrWindowNotAllowed    = errors.New("delivery window only settable on resolved tickets")
	ErrInvalidState        = errors.New("invalid state value")
	ErrProofUploadFailed   = errors.New("signature upload to storage failed")
)
