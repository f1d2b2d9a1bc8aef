package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusbuzz/internal/common"
)

func TestResolveGroupKey(t *testing.T) {
	tests := []struct {
		name     string
		roomType common.RoomType
		roomName string
		want     common.ConversationKey
	}{
		{"class room", common.RoomClass, "Computer Science - 3rd Semester", "class_computerscience3rdsemester"},
		{"subject room", common.RoomSubject, "Data Structures (CS-301)", "subject_datastructurescs301"},
		{"mentor room", common.RoomMentor, "Prof. Johnson (Mentor)", "mentor_profjohnsonmentor"},
		{"underscore kept", common.RoomClass, "lab_group_A", "class_lab_group_a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveGroupKey(tt.roomType, tt.roomName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveGroupKey_IsStable(t *testing.T) {
	a, err := ResolveGroupKey(common.RoomClass, "Computer Science - 3rd Semester")
	require.NoError(t, err)
	b, err := ResolveGroupKey(common.RoomClass, "Computer Science - 3rd Semester")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolveGroupKey_TypeSeparatesRooms(t *testing.T) {
	class, err := ResolveGroupKey(common.RoomClass, "Data Structures")
	require.NoError(t, err)
	subject, err := ResolveGroupKey(common.RoomSubject, "Data Structures")
	require.NoError(t, err)
	assert.NotEqual(t, class, subject)
}

// Names that differ only in stripped characters share a key.
func TestResolveGroupKey_StrippedCharactersCollide(t *testing.T) {
	a, err := ResolveGroupKey(common.RoomSubject, "CS-301")
	require.NoError(t, err)
	b, err := ResolveGroupKey(common.RoomSubject, "CS 301")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestResolveGroupKey_InvalidIdentity(t *testing.T) {
	cases := []struct {
		roomType common.RoomType
		roomName string
	}{
		{common.RoomClass, ""},
		{common.RoomClass, " - !! - "},
		{common.RoomType("direct"), "anything"},
		{common.RoomType(""), "Computer Science"},
	}

	for _, c := range cases {
		_, err := ResolveGroupKey(c.roomType, c.roomName)
		assert.ErrorIs(t, err, common.ErrInvalidIdentity, "type %q name %q", c.roomType, c.roomName)
	}
}

func TestResolveDirectKey(t *testing.T) {
	ab, err := ResolveDirectKey("u1", "u2")
	require.NoError(t, err)
	ba, err := ResolveDirectKey("u2", "u1")
	require.NoError(t, err)

	assert.Equal(t, common.ConversationKey("u1_u2"), ab)
	assert.Equal(t, ab, ba)
}

func TestResolveDirectKey_Symmetry(t *testing.T) {
	ids := []string{"u1", "u2", "user_1700000000000", "user_1690000000000", "mentor_1", "student_3", "A", "a"}
	for _, a := range ids {
		for _, b := range ids {
			k1, err := ResolveDirectKey(a, b)
			require.NoError(t, err)
			k2, err := ResolveDirectKey(b, a)
			require.NoError(t, err)
			assert.Equal(t, k1, k2, "pair (%s, %s)", a, b)
		}
	}
}

func TestStorageKeys_DirectNeverMatchesRoom(t *testing.T) {
	room, err := ResolveGroupKey(common.RoomClass, "Physics")
	require.NoError(t, err)
	pair, err := ResolveDirectKey("class", "physics")
	require.NoError(t, err)

	require.Equal(t, room, pair)
	assert.NotEqual(t, ConversationStorageKey(room), DirectStorageKey(pair))
}

func TestResolveDirectKey_TrimsIDs(t *testing.T) {
	key, err := ResolveDirectKey(" u2 ", "u1")
	require.NoError(t, err)
	assert.Equal(t, common.ConversationKey("u1_u2"), key)
}

func TestResolveDirectKey_InvalidIdentity(t *testing.T) {
	for _, pair := range [][2]string{{"", "u2"}, {"u1", ""}, {"", ""}, {"  ", "u2"}} {
		_, err := ResolveDirectKey(pair[0], pair[1])
		assert.ErrorIs(t, err, common.ErrInvalidIdentity, "pair %v", pair)
	}
}

func TestStorageKeys(t *testing.T) {
	assert.Equal(t, "conversation:class_cs", ConversationStorageKey("class_cs"))
	assert.Equal(t, "conversation:direct:u1_u2", DirectStorageKey("u1_u2"))
	assert.Equal(t, "notifications:u1", NotificationStorageKey("u1"))
	assert.Equal(t, "mentor:u1", MentorStorageKey("u1"))
	assert.Equal(t, "mentees:u1", MenteesStorageKey("u1"))
}
