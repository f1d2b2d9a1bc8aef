package notif

import "campusbuzz/internal/common"

// DemoNotifications is the set a user sees before anything was stored for
// them. Most recent first; the first two are unread.
func DemoNotifications() []common.Notification {
	return []common.Notification{
		{
			ID:      "1",
			Title:   "New Message",
			Message: "Prof. Johnson sent a message in Data Structures chat",
			Time:    "10 minutes ago",
			Read:    false,
			Type:    common.NotificationMessage,
		},
		{
			ID:      "2",
			Title:   "New Study Material",
			Message: "Algorithm Analysis Notes have been uploaded",
			Time:    "1 hour ago",
			Read:    false,
			Type:    common.NotificationNote,
		},
		{
			ID:      "3",
			Title:   "Upcoming Test",
			Message: "Data Structures test tomorrow at 10:00 AM",
			Time:    "3 hours ago",
			Read:    true,
			Type:    common.NotificationEvent,
		},
		{
			ID:      "4",
			Title:   "BuzzBoard Activity",
			Message: "Your post received 5 new replies",
			Time:    "1 day ago",
			Read:    true,
			Type:    common.NotificationSystem,
		},
	}
}
