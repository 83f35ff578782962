package service

import (
	"errors"
)

// Sentinel errors returned by the service layer. Handlers map them to
// HTTP status codes with errors.Is; anything else is an internal
// failure.
var (
	// ErrNotFound means a referenced entity does not exist. Article
	// mutations also return it for non-owners, so a caller cannot
	// distinguish "missing" from "not yours".
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument means the request is malformed or
	// self-referential (self-follow, self-message, unfollowing
	// someone not followed).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPermissionDenied means the actor lacks authorization.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict means a uniqueness rule was violated on creation.
	ErrConflict = errors.New("conflict")
)
