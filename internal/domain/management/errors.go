package management

import "errors"

var (
	ErrMemberNotFound   = errors.New("management member not found")
	ErrDirectorNotFound = errors.New("no director in management roster")
)
