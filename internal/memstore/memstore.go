// Package memstore is an in-process Medium standing in for a single browser
// profile's local storage. It can emulate a storage quota and a disabled
// store so callers can exercise their failure paths.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
)

var (
	ErrQuotaExceeded = errors.New("memstore: quota exceeded")
	ErrDisabled      = errors.New("memstore: storage disabled")
)

type Option func(*Profile)

// WithQuota caps the total size of keys plus values in bytes. Zero means
// unlimited.
func WithQuota(bytes int) Option {
	return func(p *Profile) {
		p.quota = bytes
	}
}

// Profile guards its map for memory safety only. Two callers doing a
// read-modify-write on the same key can still overwrite each other.
type Profile struct {
	mu       sync.RWMutex
	entries  map[string][]byte
	used     int
	quota    int
	disabled bool
}

func New(opts ...Option) *Profile {
	p := &Profile{
		entries: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Profile) Get(ctx context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.disabled {
		return nil, false, ErrDisabled
	}

	value, ok := p.entries[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (p *Profile) Set(ctx context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disabled {
		return ErrDisabled
	}

	used := p.used + len(value)
	if prev, ok := p.entries[key]; ok {
		used -= len(prev)
	} else {
		used += len(key)
	}

	if p.quota > 0 && used > p.quota {
		return ErrQuotaExceeded
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	p.entries[key] = stored
	p.used = used
	return nil
}

// Disable makes every following call fail, like storage turned off in the
// browser settings.
func (p *Profile) Disable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = true
}

func (p *Profile) Enable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = false
}

func (p *Profile) Keys() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	keys := make([]string, 0, len(p.entries))
	for k := range p.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Used reports the bytes currently counted against the quota.
func (p *Profile) Used() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.used
}
