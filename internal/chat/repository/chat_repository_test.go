package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusbuzz/internal/common"
	"campusbuzz/internal/memstore"
	"campusbuzz/internal/mocks"
)

func message(id, content string) common.Message {
	return common.Message{
		ID:      id,
		Content: content,
		Sender: common.Sender{
			ID:          "u1",
			DisplayName: "Alex Smith",
			Initials:    "AS",
			Role:        common.RoleStudent,
		},
		Timestamp: "10:30 AM",
	}
}

func TestConversationStore_LoadOrSeed(t *testing.T) {
	ctx := context.Background()
	key := common.ConversationKey("class_cs3")

	tests := []struct {
		name      string
		preload   []common.Message
		seed      common.SeedFactory[common.Message]
		want      []common.Message
		wantSaved bool
	}{
		{
			name:      "never stored with seed",
			seed:      func() []common.Message { return []common.Message{message("seed-1", "hi")} },
			want:      []common.Message{message("seed-1", "hi")},
			wantSaved: true,
		},
		{
			name:      "never stored without seed",
			want:      []common.Message{},
			wantSaved: false,
		},
		{
			name:      "stored history wins over seed",
			preload:   []common.Message{message("m1", "kept")},
			seed:      func() []common.Message { return []common.Message{message("seed-1", "hi")} },
			want:      []common.Message{message("m1", "kept")},
			wantSaved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			medium := memstore.New()
			store := NewConversationStore[common.Message](medium, nil)
			if tt.preload != nil {
				require.NoError(t, store.ReplaceAll(ctx, key, tt.preload))
			}

			got, err := store.LoadOrSeed(ctx, key, tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			_, found, err := medium.Get(ctx, "conversation:class_cs3")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, found)
		})
	}
}

func TestConversationStore_AppendMonotonic(t *testing.T) {
	ctx := context.Background()
	store := NewConversationStore[common.Message](memstore.New(), nil)
	key := common.ConversationKey("subject_datastructurescs301")

	seeded, err := store.LoadOrSeed(ctx, key, func() []common.Message {
		return []common.Message{message("seed-1", "a"), message("seed-2", "b")}
	})
	require.NoError(t, err)
	require.Len(t, seeded, 2)

	for i, id := range []string{"m1", "m2", "m3"} {
		history, err := store.Append(ctx, key, message(id, "text"))
		require.NoError(t, err)
		require.Len(t, history, len(seeded)+i+1)
		assert.Equal(t, id, history[len(history)-1].ID)
		assert.Equal(t, seeded, history[:len(seeded)])

		reloaded, err := store.LoadOrSeed(ctx, key, nil)
		require.NoError(t, err)
		assert.Equal(t, history, reloaded)
	}
}

func TestConversationStore_DirectMessages(t *testing.T) {
	ctx := context.Background()
	medium := memstore.New()
	store := NewDirectConversationStore[common.DirectMessage](medium, nil)
	key := common.ConversationKey("alice_bob")

	history, err := store.LoadOrSeed(ctx, key, nil)
	require.NoError(t, err)
	assert.Empty(t, history)

	dm := common.DirectMessage{ID: "d1", Content: "yo", SenderID: "alice", ReceiverID: "bob", SenderName: "Alice", Timestamp: "09:00 AM"}
	history, err = store.Append(ctx, key, dm)
	require.NoError(t, err)
	assert.Equal(t, []common.DirectMessage{dm}, history)
	assert.Equal(t, []string{"conversation:direct:alice_bob"}, medium.Keys())
}

func TestConversationStore_DirectAndGroupDoNotShareRecords(t *testing.T) {
	ctx := context.Background()
	medium := memstore.New()
	rooms := NewConversationStore[common.Message](medium, nil)
	directs := NewDirectConversationStore[common.DirectMessage](medium, nil)
	key := common.ConversationKey("class_physics")

	_, err := directs.Append(ctx, key, common.DirectMessage{ID: "d1", Content: "secret", SenderID: "class", ReceiverID: "physics"})
	require.NoError(t, err)

	history, err := rooms.LoadOrSeed(ctx, key, nil)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConversationStore_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	medium := mocks.NewMockMedium(ctrl)
	store := NewConversationStore[common.Message](medium, nil)
	ctx := context.Background()

	_, err := store.LoadOrSeed(ctx, "", nil)
	assert.ErrorIs(t, err, common.ErrInvalidIdentity)
	_, err = store.Append(ctx, "", message("m1", "x"))
	assert.ErrorIs(t, err, common.ErrInvalidIdentity)
	assert.ErrorIs(t, store.ReplaceAll(ctx, "", nil), common.ErrInvalidIdentity)
}

func TestConversationStore_AppendStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	medium := mocks.NewMockMedium(ctrl)
	medium.EXPECT().Get(gomock.Any(), "conversation:class_cs3").Return([]byte(`[]`), true, nil).Times(1)
	medium.EXPECT().Set(gomock.Any(), "conversation:class_cs3", gomock.Any()).Return(errors.New("quota")).Times(1)

	store := NewConversationStore[common.Message](medium, nil)
	history, err := store.Append(context.Background(), "class_cs3", message("m1", "x"))
	assert.ErrorIs(t, err, common.ErrStorageUnavailable)
	require.Len(t, history, 1)
	assert.Equal(t, "m1", history[0].ID)
}
