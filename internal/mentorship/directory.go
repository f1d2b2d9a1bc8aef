// Package mentorship keeps the mentor record of a student and the mentee
// list of a teacher, seeded with demo data on first access.
package mentorship

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
	"campusbuzz/internal/identity"
	"campusbuzz/internal/kvstore"
)

type Option func(*Directory)

// WithoutDemoSeed leaves users without a stored record empty-handed.
func WithoutDemoSeed() Option {
	return func(d *Directory) {
		d.seedDemo = false
	}
}

type Directory struct {
	mentors  *kvstore.Document[common.Mentor]
	mentees  *kvstore.Collection[common.Mentee]
	seedDemo bool
}

func NewDirectory(medium common.Medium, logger *log.Logger, opts ...Option) *Directory {
	d := &Directory{
		mentors:  kvstore.NewDocument[common.Mentor](medium, "mentor", logger),
		mentees:  kvstore.NewCollection[common.Mentee](medium, "mentees", logger),
		seedDemo: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mentor returns the student's mentor, or nil when none is stored and
// seeding is off.
func (d *Directory) Mentor(ctx context.Context, session common.Session) (*common.Mentor, error) {
	if err := requireRole(session, common.RoleStudent); err != nil {
		return nil, err
	}

	var seed func() common.Mentor
	if d.seedDemo {
		seed = DemoMentor
	}

	mentor, seeded, err := d.mentors.LoadOrSeed(ctx, identity.MentorStorageKey(session.ID), seed)
	if err != nil {
		return nil, err
	}
	if !seeded && mentor == (common.Mentor{}) {
		return nil, nil
	}
	return &mentor, nil
}

func (d *Directory) Mentees(ctx context.Context, session common.Session) ([]common.Mentee, error) {
	if err := requireRole(session, common.RoleTeacher); err != nil {
		return nil, err
	}

	var seed common.SeedFactory[common.Mentee]
	if d.seedDemo {
		seed = DemoMentees
	}
	return d.mentees.LoadOrSeed(ctx, identity.MenteesStorageKey(session.ID), seed)
}

func requireRole(session common.Session, role common.Role) error {
	if err := common.ValidateSession(session); err != nil {
		return err
	}
	if session.Role != role {
		return fmt.Errorf("%w: %s records are only kept for %s users", common.ErrRoleMismatch, session.Role, role)
	}
	return nil
}

func DemoMentor() common.Mentor {
	return common.Mentor{
		ID:              "mentor_1",
		Name:            "Prof. Johnson",
		Email:           "johnson@university.edu",
		Department:      "Computer Science",
		Subjects:        "Data Structures, Algorithms",
		LastInteraction: "2 days ago",
		Status:          common.MentorshipActive,
	}
}

func DemoMentees() []common.Mentee {
	return []common.Mentee{
		{
			ID:              "student_1",
			Name:            "Alex Johnson",
			Email:           "alex@university.edu",
			Semester:        "3rd",
			Branch:          "Computer Science",
			LastInteraction: "3 days ago",
			Status:          common.MentorshipActive,
		},
		{
			ID:              "student_2",
			Name:            "Sarah Williams",
			Email:           "sarah@university.edu",
			Semester:        "3rd",
			Branch:          "Computer Science",
			LastInteraction: "1 week ago",
			Status:          common.MentorshipPending,
		},
		{
			ID:              "student_3",
			Name:            "Michael Brown",
			Email:           "michael@university.edu",
			Semester:        "3rd",
			Branch:          "Computer Science",
			LastInteraction: "2 weeks ago",
			Status:          common.MentorshipInactive,
		},
	}
}
