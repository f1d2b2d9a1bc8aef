package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_String(t *testing.T) {
	assert.Equal(t, "student", RoleStudent.String())
	assert.Equal(t, "teacher", RoleTeacher.String())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleStudent.IsValid())
	assert.True(t, RoleTeacher.IsValid())
	assert.True(t, RoleAdmin.IsValid())

	assert.False(t, Role("janitor").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRole_Opposite(t *testing.T) {
	assert.Equal(t, RoleTeacher, RoleStudent.Opposite())
	assert.Equal(t, RoleStudent, RoleTeacher.Opposite())
	assert.Equal(t, RoleStudent, RoleAdmin.Opposite())
}

func TestParseRoomType(t *testing.T) {
	cases := []struct {
		input    string
		expected RoomType
		ok       bool
	}{
		{"class", RoomClass, true},
		{"Subject", RoomSubject, true},
		{" MENTOR ", RoomMentor, true},
		{"direct", RoomType("direct"), false},
		{"", RoomType(""), false},
	}

	for _, c := range cases {
		rt, ok := ParseRoomType(c.input)
		assert.Equal(t, c.expected, rt, "input: %q", c.input)
		assert.Equal(t, c.ok, ok, "input: %q", c.input)
	}
}

func TestNotificationType_IsValid(t *testing.T) {
	for _, nt := range []NotificationType{NotificationMessage, NotificationNote, NotificationEvent, NotificationSystem} {
		assert.True(t, nt.IsValid(), "type %s", nt)
	}
	assert.False(t, NotificationType("friend_request").IsValid())
}
