package common

import "strings"

// Role is the campus role of a session user or message sender.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the role is one the directory can hand out
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// Opposite returns the counterpart role used for mentor framing. Admins are
// staff and pair with students like teachers do.
func (r Role) Opposite() Role {
	if r == RoleStudent {
		return RoleTeacher
	}
	return RoleStudent
}

// RoomType identifies one of the group conversation surfaces.
type RoomType string

const (
	RoomClass   RoomType = "class"
	RoomSubject RoomType = "subject"
	RoomMentor  RoomType = "mentor"
)

func (rt RoomType) String() string {
	return string(rt)
}

func (rt RoomType) IsValid() bool {
	return rt == RoomClass || rt == RoomSubject || rt == RoomMentor
}

// ParseRoomType accepts the room type case-insensitively.
func ParseRoomType(s string) (RoomType, bool) {
	rt := RoomType(strings.ToLower(strings.TrimSpace(s)))
	return rt, rt.IsValid()
}

type NotificationType string

const (
	NotificationMessage NotificationType = "message"
	NotificationNote    NotificationType = "note"
	NotificationEvent   NotificationType = "event"
	NotificationSystem  NotificationType = "system"
)

func (nt NotificationType) String() string {
	return string(nt)
}

func (nt NotificationType) IsValid() bool {
	switch nt {
	case NotificationMessage, NotificationNote, NotificationEvent, NotificationSystem:
		return true
	}
	return false
}
