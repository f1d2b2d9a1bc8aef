// Package identity derives conversation keys and storage namespaces.
package identity

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"campusbuzz/internal/common"
)

const (
	conversationPrefix  = "conversation:"
	directPrefix        = "conversation:direct:"
	notificationsPrefix = "notifications:"
	mentorPrefix        = "mentor:"
	menteesPrefix       = "mentees:"
)

var roomNameStrip = regexp.MustCompile(`[^a-z0-9_]`)

// NormalizeRoomName lower-cases the name and drops everything outside
// [a-z0-9_]. Names differing only in dropped characters ("CS-301" and
// "CS 301") normalize to the same string.
func NormalizeRoomName(roomName string) string {
	return roomNameStrip.ReplaceAllString(strings.ToLower(roomName), "")
}

// ResolveGroupKey returns "<roomType>_<normalized room name>".
func ResolveGroupKey(roomType common.RoomType, roomName string) (common.ConversationKey, error) {
	if !roomType.IsValid() {
		return "", fmt.Errorf("%w: unknown room type %q", common.ErrInvalidIdentity, roomType)
	}

	normalized := NormalizeRoomName(roomName)
	if normalized == "" {
		return "", fmt.Errorf("%w: room name %q has no usable characters", common.ErrInvalidIdentity, roomName)
	}

	return common.ConversationKey(roomType.String() + "_" + normalized), nil
}

// ResolveDirectKey trims and sorts the two ids and joins them with an
// underscore, so both participants land on the same key.
func ResolveDirectKey(userA, userB string) (common.ConversationKey, error) {
	if err := common.ValidateUserID(userA); err != nil {
		return "", err
	}
	if err := common.ValidateUserID(userB); err != nil {
		return "", err
	}

	pair := []string{strings.TrimSpace(userA), strings.TrimSpace(userB)}
	sort.Strings(pair)
	return common.ConversationKey(strings.Join(pair, "_")), nil
}

func ConversationStorageKey(key common.ConversationKey) string {
	return conversationPrefix + key.String()
}

// DirectStorageKey keeps direct chats apart from group rooms. The user
// pair "class"/"physics" and the class room "Physics" both resolve to
// "class_physics" and must not share a record.
func DirectStorageKey(key common.ConversationKey) string {
	return directPrefix + key.String()
}

func NotificationStorageKey(userID string) string {
	return notificationsPrefix + userID
}

func MentorStorageKey(userID string) string {
	return mentorPrefix + userID
}

func MenteesStorageKey(userID string) string {
	return menteesPrefix + userID
}
