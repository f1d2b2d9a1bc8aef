// Package kvstore persists JSON-encoded values through a common.Medium.
//
// Every write is a full read-modify-write of one key. Nothing here locks
// across the read and the write, so two callers sharing a medium can lose
// an update. Stores built on top accept that.
package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
	"campusbuzz/internal/observability"
)

const (
	opGet = "get"
	opSet = "set"
)

// Document is a single JSON value stored under a key.
type Document[T any] struct {
	medium    common.Medium
	namespace string
	logger    *log.Logger
}

// NewDocument binds a medium to a namespace used for metric labels.
// A nil logger falls back to the package default.
func NewDocument[T any](medium common.Medium, namespace string, logger *log.Logger) *Document[T] {
	if logger == nil {
		logger = log.Default()
	}
	return &Document[T]{
		medium:    medium,
		namespace: namespace,
		logger:    logger,
	}
}

// Load decodes the value stored under key. A record that cannot be decoded
// is reported as absent so the caller seeds it again.
func (d *Document[T]) Load(ctx context.Context, key string) (T, bool, error) {
	var value T

	raw, found, err := d.medium.Get(ctx, key)
	observability.IncStoreOp(d.namespace, opGet, err)
	if err != nil {
		d.logger.Error("storage read failed", "key", key, "err", err)
		return value, false, fmt.Errorf("failed to read %s: %w: %w", key, common.ErrStorageUnavailable, err)
	}
	if !found {
		return value, false, nil
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		observability.IncCorruptRecord(d.namespace)
		d.logger.Warn("discarding undecodable record", "key", key, "err", fmt.Errorf("%w: %w", common.ErrCorruptRecord, err))
		var zero T
		return zero, false, nil
	}

	return value, true, nil
}

func (d *Document[T]) Save(ctx context.Context, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	err = d.medium.Set(ctx, key, raw)
	observability.IncStoreOp(d.namespace, opSet, err)
	if err != nil {
		d.logger.Error("storage write failed", "key", key, "err", err)
		return fmt.Errorf("failed to write %s: %w: %w", key, common.ErrStorageUnavailable, err)
	}
	return nil
}

// LoadOrSeed returns the stored value, or persists and returns seed() when
// nothing usable is stored. seeded reports whether seed was called. A nil
// seed leaves storage untouched. When persisting the seed fails the seeded
// value is still returned together with the error.
func (d *Document[T]) LoadOrSeed(ctx context.Context, key string, seed func() T) (value T, seeded bool, err error) {
	value, found, err := d.Load(ctx, key)
	if err != nil || found || seed == nil {
		return value, false, err
	}

	value = seed()
	if err := d.Save(ctx, key, value); err != nil {
		return value, true, err
	}
	observability.IncSeed(d.namespace)
	d.logger.Debug("seeded record", "key", key)
	return value, true, nil
}
