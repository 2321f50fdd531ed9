package services

import "errors"

var (
	ErrForbidden          = errors.New("forbidden")
	ErrFormUnavailable    = errors.New("form not accepting submissions")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrOrderMismatch      = errors.New("submitted ids do not match the form's questions")
	ErrNotProtected       = errors.New("form is not password protected")
	ErrAccessDenied       = errors.New("invalid access code")
	ErrDraftsDisabled     = errors.New("partial saves are disabled for this form")
)
