package repository

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
	"campusbuzz/internal/identity"
	"campusbuzz/internal/kvstore"
)

const (
	namespace       = "conversation"
	directNamespace = "direct"
)

// ConversationStore persists the message history of one conversation key.
// M is common.Message for group rooms and common.DirectMessage for direct
// chats.
type ConversationStore[M any] interface {
	LoadOrSeed(ctx context.Context, key common.ConversationKey, seed common.SeedFactory[M]) ([]M, error)
	Append(ctx context.Context, key common.ConversationKey, msg M) ([]M, error)
	ReplaceAll(ctx context.Context, key common.ConversationKey, msgs []M) error
}

type conversationRepo[M any] struct {
	messages   *kvstore.Collection[M]
	storageKey func(common.ConversationKey) string
}

// NewConversationStore keeps group room histories under "conversation:".
func NewConversationStore[M any](medium common.Medium, logger *log.Logger) ConversationStore[M] {
	return &conversationRepo[M]{
		messages:   kvstore.NewCollection[M](medium, namespace, logger),
		storageKey: identity.ConversationStorageKey,
	}
}

// NewDirectConversationStore keeps direct chats under "conversation:direct:"
// so a user pair can never read or write a group room.
func NewDirectConversationStore[M any](medium common.Medium, logger *log.Logger) ConversationStore[M] {
	return &conversationRepo[M]{
		messages:   kvstore.NewCollection[M](medium, directNamespace, logger),
		storageKey: identity.DirectStorageKey,
	}
}

func (r *conversationRepo[M]) LoadOrSeed(ctx context.Context, key common.ConversationKey, seed common.SeedFactory[M]) ([]M, error) {
	storageKey, err := r.storageKeyFor(key)
	if err != nil {
		return nil, err
	}
	return r.messages.LoadOrSeed(ctx, storageKey, seed)
}

// Append adds msg after the stored history. The returned slice is the new
// history, also when persisting it failed.
func (r *conversationRepo[M]) Append(ctx context.Context, key common.ConversationKey, msg M) ([]M, error) {
	storageKey, err := r.storageKeyFor(key)
	if err != nil {
		return nil, err
	}
	return r.messages.Update(ctx, storageKey, nil, func(history []M) []M {
		return append(history, msg)
	})
}

func (r *conversationRepo[M]) ReplaceAll(ctx context.Context, key common.ConversationKey, msgs []M) error {
	storageKey, err := r.storageKeyFor(key)
	if err != nil {
		return err
	}
	return r.messages.Save(ctx, storageKey, msgs)
}

func (r *conversationRepo[M]) storageKeyFor(key common.ConversationKey) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: conversation key is required", common.ErrInvalidIdentity)
	}
	return r.storageKey(key), nil
}
