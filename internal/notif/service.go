package notif

import (
	"context"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
	"campusbuzz/internal/identity"
	"campusbuzz/internal/kvstore"
)

const (
	namespace = "notifications"

	defaultPreviewLimit = 3

	ActionSeed        = "seed"
	ActionMarkRead    = "mark_read"
	ActionMarkAllRead = "mark_all_read"
	ActionRemove      = "remove"
	ActionReplaceAll  = "replace_all"
)

// Ledger is the per-user notification list behind the badge and the
// notifications page. Every mutation is one read-modify-write of the
// user's whole list.
type Ledger interface {
	List(ctx context.Context, userID string) ([]common.Notification, error)
	Preview(ctx context.Context, userID string, limit int) ([]common.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) ([]common.Notification, error)
	MarkAllRead(ctx context.Context, userID string) ([]common.Notification, error)
	Remove(ctx context.Context, userID, notificationID string) ([]common.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	ReplaceAll(ctx context.Context, userID string, notifications []common.Notification) error
}

type Option func(*NotificationService)

// WithoutDemoSeed makes a user without stored notifications start empty.
func WithoutDemoSeed() Option {
	return func(s *NotificationService) {
		s.seed = nil
	}
}

func WithPreviewLimit(limit int) Option {
	return func(s *NotificationService) {
		if limit > 0 {
			s.previewLimit = limit
		}
	}
}

type NotificationService struct {
	records      *kvstore.Collection[common.Notification]
	manager      common.Subject
	seed         common.SeedFactory[common.Notification]
	previewLimit int
}

var _ Ledger = (*NotificationService)(nil)

func NewNotificationService(medium common.Medium, manager common.Subject, logger *log.Logger, opts ...Option) *NotificationService {
	if manager == nil {
		manager = NewNotificationManager(logger)
	}
	s := &NotificationService{
		records:      kvstore.NewCollection[common.Notification](medium, namespace, logger),
		manager:      manager,
		seed:         DemoNotifications,
		previewLimit: defaultPreviewLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the stored list, seeding the demo set when nothing has been
// stored for the user. A stored empty list counts as stored.
func (s *NotificationService) List(ctx context.Context, userID string) ([]common.Notification, error) {
	if err := common.ValidateUserID(userID); err != nil {
		return nil, err
	}

	items, seeded, err := s.records.Ensure(ctx, identity.NotificationStorageKey(userID), s.seed)
	if err != nil {
		return items, err
	}
	if seeded {
		s.notify(userID, ActionSeed, items, nil)
	}
	return items, nil
}

// Preview returns the first limit items in stored order. A non-positive
// limit uses the configured default.
func (s *NotificationService) Preview(ctx context.Context, userID string, limit int) ([]common.Notification, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.previewLimit
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// MarkRead is a no-op for an unknown id.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) ([]common.Notification, error) {
	return s.mutate(ctx, userID, ActionMarkRead, func(items []common.Notification) ([]common.Notification, []string) {
		var affected []string
		for i := range items {
			if items[i].ID == notificationID && !items[i].Read {
				items[i].Read = true
				affected = append(affected, items[i].ID)
			}
		}
		return items, affected
	})
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) ([]common.Notification, error) {
	return s.mutate(ctx, userID, ActionMarkAllRead, func(items []common.Notification) ([]common.Notification, []string) {
		var affected []string
		for i := range items {
			if !items[i].Read {
				items[i].Read = true
				affected = append(affected, items[i].ID)
			}
		}
		return items, affected
	})
}

func (s *NotificationService) Remove(ctx context.Context, userID, notificationID string) ([]common.Notification, error) {
	return s.mutate(ctx, userID, ActionRemove, func(items []common.Notification) ([]common.Notification, []string) {
		kept := make([]common.Notification, 0, len(items))
		var affected []string
		for _, n := range items {
			if n.ID == notificationID {
				affected = append(affected, n.ID)
				continue
			}
			kept = append(kept, n)
		}
		return kept, affected
	})
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	return countUnread(items), nil
}

// ReplaceAll overwrites the user's list. The UI uses it to prepend new
// notifications.
func (s *NotificationService) ReplaceAll(ctx context.Context, userID string, notifications []common.Notification) error {
	if err := common.ValidateUserID(userID); err != nil {
		return err
	}
	if err := s.records.Save(ctx, identity.NotificationStorageKey(userID), notifications); err != nil {
		return err
	}

	ids := make([]string, 0, len(notifications))
	for _, n := range notifications {
		ids = append(ids, n.ID)
	}
	s.notify(userID, ActionReplaceAll, notifications, ids)
	return nil
}

func (s *NotificationService) mutate(
	ctx context.Context,
	userID, action string,
	change func([]common.Notification) ([]common.Notification, []string),
) ([]common.Notification, error) {
	if err := common.ValidateUserID(userID); err != nil {
		return nil, err
	}

	var affected []string
	items, err := s.records.Update(ctx, identity.NotificationStorageKey(userID), s.seed, func(items []common.Notification) []common.Notification {
		items, affected = change(items)
		return items
	})
	if err != nil {
		return items, err
	}

	s.notify(userID, action, items, affected)
	return items, nil
}

func (s *NotificationService) notify(userID, action string, items []common.Notification, affected []string) {
	s.manager.Notify(common.LedgerEvent{
		UserID:      userID,
		Action:      action,
		Unread:      countUnread(items),
		Total:       len(items),
		AffectedIDs: affected,
	})
}

func countUnread(items []common.Notification) int {
	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	return unread
}
