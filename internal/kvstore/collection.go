package kvstore

import (
	"context"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
)

// Collection is an ordered JSON array stored under a key.
type Collection[T any] struct {
	doc *Document[[]T]
}

func NewCollection[T any](medium common.Medium, namespace string, logger *log.Logger) *Collection[T] {
	return &Collection[T]{
		doc: NewDocument[[]T](medium, namespace, logger),
	}
}

// Load reports found=true for any stored array, including an empty one.
func (c *Collection[T]) Load(ctx context.Context, key string) ([]T, bool, error) {
	items, found, err := c.doc.Load(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if found && items == nil {
		items = []T{}
	}
	return items, found, nil
}

func (c *Collection[T]) Save(ctx context.Context, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.doc.Save(ctx, key, items)
}

// LoadOrSeed returns the stored items verbatim when a record exists. Otherwise
// it persists seed() and returns it. A nil seed yields an empty slice and
// writes nothing.
func (c *Collection[T]) LoadOrSeed(ctx context.Context, key string, seed common.SeedFactory[T]) ([]T, error) {
	items, _, err := c.Ensure(ctx, key, seed)
	return items, err
}

// Ensure is LoadOrSeed that also reports whether the seed was used.
func (c *Collection[T]) Ensure(ctx context.Context, key string, seed common.SeedFactory[T]) ([]T, bool, error) {
	var factory func() []T
	if seed != nil {
		factory = func() []T {
			items := seed()
			if items == nil {
				items = []T{}
			}
			return items
		}
	}

	items, seeded, err := c.doc.LoadOrSeed(ctx, key, factory)
	if items == nil && err == nil {
		items = []T{}
	}
	return items, seeded, err
}

// Update applies mutate to the current items and writes the result back.
// An absent record starts from seed() when seed is non-nil, otherwise from
// an empty slice. The mutated slice is returned even when the write fails.
func (c *Collection[T]) Update(ctx context.Context, key string, seed common.SeedFactory[T], mutate func([]T) []T) ([]T, error) {
	items, found, err := c.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		items = []T{}
		if seed != nil {
			if seeded := seed(); seeded != nil {
				items = seeded
			}
		}
	}

	items = mutate(items)
	if items == nil {
		items = []T{}
	}
	if err := c.Save(ctx, key, items); err != nil {
		return items, err
	}
	return items, nil
}
