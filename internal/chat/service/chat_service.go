package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusbuzz/internal/chat/repository"
	"campusbuzz/internal/chat/seed"
	"campusbuzz/internal/common"
	"campusbuzz/internal/identity"
)

const (
	defaultTimestampLayout = "03:04 PM"

	demoClassRoom   = "Computer Science - Semester 3"
	demoSubjectRoom = "Data Structures (CS-301)"
	demoMentorRoom  = "Prof. Johnson (Mentor)"
)

// ChatService is what a conversation view talks to: it resolves the key,
// loads or seeds the history, appends new messages and marks which ones
// belong to the viewer.
type ChatService interface {
	OpenRoom(ctx context.Context, session common.Session, roomType common.RoomType, roomName string) (*RoomView, error)
	SendToRoom(ctx context.Context, session common.Session, roomType common.RoomType, roomName, content string) (*RoomView, error)
	OpenDirect(ctx context.Context, session common.Session, peerID string) (*DirectView, error)
	SendDirect(ctx context.Context, session common.Session, peerID, content string) (*DirectView, error)
	DefaultRooms(session common.Session) []Room
}

type Option func(*chatService)

// WithClock replaces time.Now for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *chatService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *chatService) {
		s.newID = newID
	}
}

// WithTimestampLayout sets the Go time layout of displayed timestamps.
func WithTimestampLayout(layout string) Option {
	return func(s *chatService) {
		if layout != "" {
			s.layout = layout
		}
	}
}

// WithoutDemoSeed makes unopened rooms start empty.
func WithoutDemoSeed() Option {
	return func(s *chatService) {
		s.seedDemo = false
	}
}

type chatService struct {
	rooms    repository.ConversationStore[common.Message]
	directs  repository.ConversationStore[common.DirectMessage]
	now      func() time.Time
	newID    func() string
	layout   string
	seedDemo bool
}

// Constructor used in DI/wire
func NewChatService(
	rooms repository.ConversationStore[common.Message],
	directs repository.ConversationStore[common.DirectMessage],
	opts ...Option,
) ChatService {
	s := &chatService{
		rooms:    rooms,
		directs:  directs,
		now:      time.Now,
		newID:    newMessageID,
		layout:   defaultTimestampLayout,
		seedDemo: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newMessageID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func (s *chatService) OpenRoom(ctx context.Context, session common.Session, roomType common.RoomType, roomName string) (*RoomView, error) {
	room, err := s.resolveRoom(session, roomType, roomName)
	if err != nil {
		return nil, err
	}

	history, err := s.rooms.LoadOrSeed(ctx, room.Key, s.roomSeed(room, session))
	if err != nil {
		return nil, fmt.Errorf("failed to open room %s: %w", room.Key, err)
	}
	return newRoomView(room, session, history, false), nil
}

// SendToRoom appends content as a message from the session user. When the
// medium refuses the write the view still carries the message, flagged
// Unsynced, and the error is returned alongside it.
func (s *chatService) SendToRoom(ctx context.Context, session common.Session, roomType common.RoomType, roomName, content string) (*RoomView, error) {
	room, err := s.resolveRoom(session, roomType, roomName)
	if err != nil {
		return nil, err
	}
	content, err = common.NormalizeContent(content)
	if err != nil {
		return nil, err
	}

	msg := common.Message{
		ID:        s.newID(),
		Content:   content,
		Sender:    session.Sender(),
		Timestamp: s.timestamp(),
	}

	history, err := s.rooms.LoadOrSeed(ctx, room.Key, s.roomSeed(room, session))
	if err == nil {
		var updated []common.Message
		updated, err = s.rooms.Append(ctx, room.Key, msg)
		if err == nil {
			return newRoomView(room, session, updated, false), nil
		}
		if updated != nil {
			history = updated[:len(updated)-1]
		}
	}

	if !errors.Is(err, common.ErrStorageUnavailable) {
		return nil, err
	}
	history = append(history, msg)
	return newRoomView(room, session, history, true), fmt.Errorf("failed to send message: %w", err)
}

// Direct chats are never seeded.
func (s *chatService) OpenDirect(ctx context.Context, session common.Session, peerID string) (*DirectView, error) {
	key, peerID, err := resolveDirect(session, peerID)
	if err != nil {
		return nil, err
	}

	history, err := s.directs.LoadOrSeed(ctx, key, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open direct chat %s: %w", key, err)
	}
	return newDirectView(key, peerID, session, history, false), nil
}

func (s *chatService) SendDirect(ctx context.Context, session common.Session, peerID, content string) (*DirectView, error) {
	key, peerID, err := resolveDirect(session, peerID)
	if err != nil {
		return nil, err
	}
	content, err = common.NormalizeContent(content)
	if err != nil {
		return nil, err
	}

	msg := common.DirectMessage{
		ID:         s.newID(),
		Content:    content,
		SenderID:   session.ID,
		ReceiverID: peerID,
		SenderName: session.Name,
		Timestamp:  s.timestamp(),
	}

	history, err := s.directs.Append(ctx, key, msg)
	if err == nil {
		return newDirectView(key, peerID, session, history, false), nil
	}
	if !errors.Is(err, common.ErrStorageUnavailable) {
		return nil, err
	}
	if history == nil {
		history = []common.DirectMessage{msg}
	}
	return newDirectView(key, peerID, session, history, true), fmt.Errorf("failed to send message: %w", err)
}

// DefaultRooms lists the rooms a user belongs to: the class room for their
// branch and semester, one room per subject they teach and the mentor room.
func (s *chatService) DefaultRooms(session common.Session) []Room {
	className := demoClassRoom
	if session.Role == common.RoleStudent && session.Branch != "" && session.Semester != "" {
		className = fmt.Sprintf("%s - Semester %s", session.Branch, session.Semester)
	}

	candidates := []Room{{Type: common.RoomClass, Name: className}}

	subjects := splitSubjects(session.Subjects)
	if session.Role == common.RoleStudent || len(subjects) == 0 {
		subjects = []string{demoSubjectRoom}
	}
	for _, subject := range subjects {
		candidates = append(candidates, Room{Type: common.RoomSubject, Name: subject})
	}
	candidates = append(candidates, Room{Type: common.RoomMentor, Name: demoMentorRoom})

	rooms := make([]Room, 0, len(candidates))
	seen := make(map[common.ConversationKey]bool, len(candidates))
	for _, room := range candidates {
		key, err := identity.ResolveGroupKey(room.Type, room.Name)
		if err != nil || seen[key] {
			continue
		}
		seen[key] = true
		room.Key = key
		rooms = append(rooms, room)
	}
	return rooms
}

func (s *chatService) resolveRoom(session common.Session, roomType common.RoomType, roomName string) (Room, error) {
	if err := common.ValidateSession(session); err != nil {
		return Room{}, err
	}
	key, err := identity.ResolveGroupKey(roomType, roomName)
	if err != nil {
		return Room{}, err
	}
	return Room{Type: roomType, Name: roomName, Key: key}, nil
}

func (s *chatService) roomSeed(room Room, session common.Session) common.SeedFactory[common.Message] {
	if !s.seedDemo {
		return nil
	}
	return seed.Factory(room.Type, room.Name, session)
}

func (s *chatService) timestamp() string {
	return s.now().Format(s.layout)
}

// resolveDirect also returns the trimmed peer id, the form stored in
// ReceiverID and used for the key.
func resolveDirect(session common.Session, peerID string) (common.ConversationKey, string, error) {
	if err := common.ValidateSession(session); err != nil {
		return "", "", err
	}
	peerID = strings.TrimSpace(peerID)
	if peerID == strings.TrimSpace(session.ID) {
		return "", "", fmt.Errorf("%w: cannot open a direct chat with yourself", common.ErrInvalidIdentity)
	}
	key, err := identity.ResolveDirectKey(session.ID, peerID)
	if err != nil {
		return "", "", err
	}
	return key, peerID, nil
}

func splitSubjects(subjects string) []string {
	var out []string
	for _, s := range strings.Split(subjects, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
