// Package directory reads the user list kept by the external auth layer.
// Nothing here writes to it.
package directory

import (
	"context"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
	"campusbuzz/internal/kvstore"
)

// UsersKey is where the auth layer keeps every registered user.
const UsersKey = "users"

// storedUser mirrors the auth layer's record. Password is decoded only so
// it can be dropped.
type storedUser struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password,omitempty"`
	Role     common.Role `json:"role"`
	Semester string      `json:"semester,omitempty"`
	Branch   string      `json:"branch,omitempty"`
}

type roster struct {
	users *kvstore.Collection[storedUser]
}

func NewRoster(medium common.Medium, logger *log.Logger) common.Roster {
	return &roster{
		users: kvstore.NewCollection[storedUser](medium, UsersKey, logger),
	}
}

// Others lists every user except currentUserID, without credentials.
func (r *roster) Others(ctx context.Context, currentUserID string) ([]common.Contact, error) {
	if err := common.ValidateUserID(currentUserID); err != nil {
		return nil, err
	}

	users, _, err := r.users.Load(ctx, UsersKey)
	if err != nil {
		return nil, err
	}

	contacts := make([]common.Contact, 0, len(users))
	for _, u := range users {
		if u.ID == "" || u.ID == currentUserID {
			continue
		}
		contacts = append(contacts, common.Contact{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			Semester: u.Semester,
			Branch:   u.Branch,
		})
	}
	return contacts, nil
}
