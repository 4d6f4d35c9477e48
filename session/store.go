package session

import (
	"context"
	"errors"
)

// ErrNotFound indicates no session exists for the given id.
var ErrNotFound = errors.New("session not found")

// Store keeps sessions for the lifetime of the process. Get returns
// ErrNotFound for unknown ids.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, state *State) error
	Delete(ctx context.Context, id string) error
}
