package service

import "campusbuzz/internal/common"

type Room struct {
	Type common.RoomType        `json:"type"`
	Name string                 `json:"name"`
	Key  common.ConversationKey `json:"key"`
}

// RenderedMessage is a stored message plus the viewer-relative flag.
type RenderedMessage struct {
	common.Message
	IsMine bool `json:"isMine"`
}

type RoomView struct {
	Room     Room              `json:"room"`
	Messages []RenderedMessage `json:"messages"`
	// Unsynced means the last message is only in this view and was not
	// persisted.
	Unsynced bool `json:"unsynced"`
}

type RenderedDirectMessage struct {
	common.DirectMessage
	IsMine bool `json:"isMine"`
}

type DirectView struct {
	Key      common.ConversationKey  `json:"key"`
	PeerID   string                  `json:"peerId"`
	Messages []RenderedDirectMessage `json:"messages"`
	Unsynced bool                    `json:"unsynced"`
}

func newRoomView(room Room, session common.Session, history []common.Message, unsynced bool) *RoomView {
	messages := make([]RenderedMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, RenderedMessage{
			Message: m,
			IsMine:  m.Sender.ID == session.ID,
		})
	}
	return &RoomView{Room: room, Messages: messages, Unsynced: unsynced}
}

func newDirectView(key common.ConversationKey, peerID string, session common.Session, history []common.DirectMessage, unsynced bool) *DirectView {
	messages := make([]RenderedDirectMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, RenderedDirectMessage{
			DirectMessage: m,
			IsMine:        m.SenderID == session.ID,
		})
	}
	return &DirectView{Key: key, PeerID: peerID, Messages: messages, Unsynced: unsynced}
}
