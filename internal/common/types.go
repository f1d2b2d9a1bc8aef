package common

// ConversationKey identifies one chat thread, group or direct.
type ConversationKey string

func (k ConversationKey) String() string {
	return string(k)
}

type Sender struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	Initials    string `json:"initials"`
	Role        Role   `json:"role"`
}

// Message is one entry of a group conversation. Whether it belongs to the
// viewer is derived from Sender.ID at render time and never stored.
type Message struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Sender    Sender `json:"sender"`
	Timestamp string `json:"timestamp"`
}

type DirectMessage struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	SenderName string `json:"senderName"`
	Timestamp  string `json:"timestamp"`
}

type Notification struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Read    bool             `json:"read"`
	Type    NotificationType `json:"type"`
}

// Session is the current user as handed over by the session layer.
type Session struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Role       Role   `json:"role"`
	Semester   string `json:"semester,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Department string `json:"department,omitempty"`
	Subjects   string `json:"subjects,omitempty"`
}

// Sender builds the message sender block for this session user. Stored
// messages only know students and teachers, so admins post as teachers.
func (s Session) Sender() Sender {
	role := s.Role
	if role == RoleAdmin {
		role = RoleTeacher
	}
	return Sender{
		ID:          s.ID,
		DisplayName: s.Name,
		Initials:    Initials(s.Name),
		Role:        role,
	}
}

// Contact is another known user, a possible direct chat target.
type Contact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
	Semester string `json:"semester,omitempty"`
	Branch   string `json:"branch,omitempty"`
}

type MentorshipStatus string

const (
	MentorshipActive   MentorshipStatus = "active"
	MentorshipPending  MentorshipStatus = "pending"
	MentorshipInactive MentorshipStatus = "inactive"
)

type Mentor struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Department      string           `json:"department"`
	Subjects        string           `json:"subjects"`
	LastInteraction string           `json:"lastInteraction"`
	Status          MentorshipStatus `json:"status"`
}

type Mentee struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Semester        string           `json:"semester"`
	Branch          string           `json:"branch"`
	LastInteraction string           `json:"lastInteraction"`
	Status          MentorshipStatus `json:"status"`
}
