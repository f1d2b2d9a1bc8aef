package common

import (
	"context"
)

// Medium is the durable key/value surface every store persists through.
// Get reports found=false with a nil error for a missing key.
type Medium interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
}

// SeedFactory produces the initial contents of a collection that has never
// been stored. A nil factory means "do not seed".
type SeedFactory[T any] func() []T

// Roster lists the other users known to the session layer.
type Roster interface {
	Others(ctx context.Context, currentUserID string) ([]Contact, error)
}

// LedgerEvent describes a committed change to a user's notification list.
type LedgerEvent struct {
	UserID      string
	Action      string
	Unread      int
	Total       int
	AffectedIDs []string
}

type Observer interface {
	Update(event LedgerEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event LedgerEvent)
}
