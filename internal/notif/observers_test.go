package notif

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusbuzz/internal/common"
)

func TestObserverNames(t *testing.T) {
	assert.Equal(t, "metrics_observer", NewMetricsObserver().Name())
	assert.Equal(t, "logging_observer", NewLoggingObserver(nil).Name())
	assert.Equal(t, "badge_observer", NewBadgeObserver(nil).Name())
}

func TestMetricsObserver_Update(t *testing.T) {
	obs := NewMetricsObserver()

	err := obs.Update(common.LedgerEvent{UserID: "u1", Action: "metrics_observer_test", Unread: 2, Total: 4})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(prometheus.DefaultGatherer,
		"campusbuzz_notification_ledger_mutations_total",
		"campusbuzz_notifications_unread_after_mutation",
	)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 2)
}

func TestLoggingObserver_Update(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	obs := NewLoggingObserver(logger)

	err := obs.Update(common.LedgerEvent{UserID: "u1", Action: ActionRemove, Unread: 1, Total: 3})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "notification ledger updated")
	assert.Contains(t, out, "u1")
	assert.Contains(t, out, ActionRemove)
}

func TestBadgeObserver_Update(t *testing.T) {
	var gotUser string
	var gotUnread int
	obs := NewBadgeObserver(func(userID string, unread int) error {
		gotUser, gotUnread = userID, unread
		return nil
	})

	require.NoError(t, obs.Update(common.LedgerEvent{UserID: "u7", Unread: 5}))
	assert.Equal(t, "u7", gotUser)
	assert.Equal(t, 5, gotUnread)

	failing := NewBadgeObserver(func(string, int) error { return errors.New("ui gone") })
	err := failing.Update(common.LedgerEvent{UserID: "u7"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to refresh badge")

	assert.NoError(t, NewBadgeObserver(nil).Update(common.LedgerEvent{}))
}
