package phonehub

import (
	"errors"

	"github.com/ourstudio-se/phonehub/session"
)

var (
	// ErrInvalidConfig indicates the bot configuration is incomplete.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyMessage indicates a chat request without text.
	ErrEmptyMessage = errors.New("message is required")

	// ErrSessionNotFound indicates the session does not exist or has expired.
	ErrSessionNotFound = session.ErrNotFound
)
