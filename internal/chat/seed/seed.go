// Package seed builds the demo history shown in a room that has never been
// opened. Output depends only on its arguments.
package seed

import (
	"fmt"

	"campusbuzz/internal/common"
)

var (
	demoTeacher = common.Sender{
		ID:          "seed_teacher",
		DisplayName: "Prof. Johnson",
		Initials:    "PJ",
		Role:        common.RoleTeacher,
	}
	demoStudent = common.Sender{
		ID:          "seed_student",
		DisplayName: "Alex Smith",
		Initials:    "AS",
		Role:        common.RoleStudent,
	}
)

const (
	assignmentReminder = "Hey everyone! Don't forget about the assignment due tomorrow."
	acknowledgement    = "Thanks for the reminder! I'm almost done with it."

	teacherGreeting = "Hi! I'm your mentor for this semester. Feel free to reach out with any questions about your courses or projects."
	studentGreeting = "Hello Professor! Thank you for agreeing to mentor me. Could we set up a time to talk about my project?"
)

// For returns the demo messages for a room. Mentor rooms get one greeting
// from the other side of the mentorship. Class and subject rooms get a
// teacher reminder followed by a student reply.
func For(roomType common.RoomType, roomName string, viewer common.Session) []common.Message {
	if roomType == common.RoomMentor {
		return []common.Message{mentorGreeting(viewer.Role)}
	}

	return []common.Message{
		{
			ID:        "seed-1",
			Content:   reminder(roomType, roomName),
			Sender:    demoTeacher,
			Timestamp: "10:30 AM",
		},
		{
			ID:        "seed-2",
			Content:   acknowledgement,
			Sender:    demoStudent,
			Timestamp: "10:32 AM",
		},
	}
}

// Factory defers For until the store finds the room empty.
func Factory(roomType common.RoomType, roomName string, viewer common.Session) common.SeedFactory[common.Message] {
	return func() []common.Message {
		return For(roomType, roomName, viewer)
	}
}

func reminder(roomType common.RoomType, roomName string) string {
	if roomType == common.RoomSubject {
		return assignmentReminder
	}
	return fmt.Sprintf("Hey everyone! Don't forget about our %s meeting tomorrow at 10:00 AM.", roomName)
}

// Admins are seeded like teachers.
func mentorGreeting(viewerRole common.Role) common.Message {
	sender, content := demoTeacher, teacherGreeting
	if viewerRole.Opposite() == common.RoleStudent {
		sender, content = demoStudent, studentGreeting
	}
	return common.Message{
		ID:        "seed-1",
		Content:   content,
		Sender:    sender,
		Timestamp: "10:30 AM",
	}
}
