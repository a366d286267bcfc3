package models

import (
	"errors"
)

var (
	ErrUsage           = errors.New("usage error")
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLoad marks a taxonomy that is missing, unreadable or malformed.
	ErrLoad = errors.New("taxonomy load failed")
)
