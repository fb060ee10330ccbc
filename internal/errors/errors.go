// Package errors provides custom error types for the application.
package errors

import "errors"

// Error kinds. Every application error unwraps to exactly one of these,
// which decides the HTTP status it is reported with.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("Unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUpload       = errors.New("image upload failed")
)

// kindError is a sentinel with its own message that is classified under a kind.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// New returns an error with the given message that matches kind under errors.Is.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Validation returns a validation error carrying msg.
func Validation(msg string) error {
	return New(ErrValidation, msg)
}

// Upload wraps an image-host failure so it is reported as an upload error.
func Upload(err error) error {
	return &uploadError{cause: err}
}

type uploadError struct {
	cause error
}

func (e *uploadError) Error() string { return ErrUpload.Error() + ": " + e.cause.Error() }

func (e *uploadError) Unwrap() []error { return []error{ErrUpload, e.cause} }

// IsNotFound reports whether err is classified as not found.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Auth errors
var (
	ErrInvalidCredentials = New(ErrUnauthorized, "Invalid credentials")
)

// User errors
var (
	ErrUserNotFound      = New(ErrNotFound, "user not found")
	ErrUserAlreadyExists = New(ErrConflict, "user with this email already exists")
)

// Page errors
var (
	ErrPageNotFound  = New(ErrNotFound, "page not found")
	ErrPageSlugTaken = New(ErrConflict, "page slug is already taken")
)

// Blog errors
var (
	ErrBlogNotFound = New(ErrNotFound, "blog not found")
)

// Project errors
var (
	ErrProjectNotFound     = New(ErrNotFound, "project not found")
	ErrProjectSlugTaken    = New(ErrConflict, "project slug is already taken")
	ErrProjectCardImage    = New(ErrValidation, "every new card requires an image")
	ErrProjectCardRequired = New(ErrValidation, "every new card requires a title and description")
	ErrProjectFAQRequired  = New(ErrValidation, "every new faq requires a question and answer")
)

// Contact errors
var (
	ErrContactNotFound = New(ErrNotFound, "contact not found")
)

// Request errors
var (
	ErrInvalidID        = New(ErrValidation, "invalid id format")
	ErrInvalidSortBy    = New(ErrValidation, "sortBy is not an allowed field")
	ErrInvalidSortOrder = New(ErrValidation, "sortOrder must be one of asc, desc")
	ErrInvalidImage     = New(ErrValidation, "file is not a supported image")
	ErrImageTooLarge    = New(ErrValidation, "image exceeds the maximum upload size")
	ErrImageDimensions  = New(ErrValidation, "image dimensions exceed the maximum pixel count")
)
