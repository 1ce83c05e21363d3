package apperr

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrTextRequired   = errors.New("text is required")
	ErrTextTooLong    = errors.New("text too long")
	ErrParentNotFound = errors.New("parent note not found")
	ErrNestedReply    = errors.New("replies cannot be nested")
)
