package notif

import (
	"fmt"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
	"campusbuzz/internal/observability"
)

type MetricsObserver struct{}

func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{}
}

func (m *MetricsObserver) Name() string {
	return "metrics_observer"
}

func (m *MetricsObserver) Update(event common.LedgerEvent) error {
	observability.IncLedgerMutation(event.Action)
	observability.ObserveUnread(event.Action, event.Unread)
	return nil
}

type LoggingObserver struct {
	logger *log.Logger
}

func NewLoggingObserver(logger *log.Logger) *LoggingObserver {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingObserver{logger: logger}
}

func (l *LoggingObserver) Name() string {
	return "logging_observer"
}

func (l *LoggingObserver) Update(event common.LedgerEvent) error {
	l.logger.Info("notification ledger updated",
		"user", event.UserID,
		"action", event.Action,
		"unread", event.Unread,
		"total", event.Total,
		"affected", event.AffectedIDs,
	)
	return nil
}

// BadgeObserver hands the new unread count to the UI badge.
type BadgeObserver struct {
	refresh func(userID string, unread int) error
}

func NewBadgeObserver(refresh func(userID string, unread int) error) *BadgeObserver {
	return &BadgeObserver{refresh: refresh}
}

func (b *BadgeObserver) Name() string {
	return "badge_observer"
}

func (b *BadgeObserver) Update(event common.LedgerEvent) error {
	if b.refresh == nil {
		return nil
	}
	if err := b.refresh(event.UserID, event.Unread); err != nil {
		return fmt.Errorf("failed to refresh badge: %w", err)
	}
	return nil
}
