package observability

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncStoreOp(t *testing.T) {
	okBefore := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("metrics_test", "append", ResultOK))
	errBefore := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("metrics_test", "append", ResultError))

	IncStoreOp("metrics_test", "append", nil)
	IncStoreOp("metrics_test", "append", nil)
	IncStoreOp("metrics_test", "append", errors.New("quota exceeded"))

	assert.Equal(t, okBefore+2, testutil.ToFloat64(storeOperationsTotal.WithLabelValues("metrics_test", "append", ResultOK)))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(storeOperationsTotal.WithLabelValues("metrics_test", "append", ResultError)))
}

func TestIncSeedAndCorrupt(t *testing.T) {
	seeds := testutil.ToFloat64(storeSeedsTotal.WithLabelValues("metrics_test"))
	corrupt := testutil.ToFloat64(storeCorruptRecordsTotal.WithLabelValues("metrics_test"))

	IncSeed("metrics_test")
	IncCorruptRecord("metrics_test")

	assert.Equal(t, seeds+1, testutil.ToFloat64(storeSeedsTotal.WithLabelValues("metrics_test")))
	assert.Equal(t, corrupt+1, testutil.ToFloat64(storeCorruptRecordsTotal.WithLabelValues("metrics_test")))
}

func TestObserveUnread(t *testing.T) {
	before := testutil.CollectAndCount(notificationsUnread)

	ObserveUnread("metrics_test_unread", 0)
	ObserveUnread("metrics_test_unread", 3)

	assert.Equal(t, before+1, testutil.CollectAndCount(notificationsUnread))
}

func TestIncLedgerMutation(t *testing.T) {
	before := testutil.ToFloat64(ledgerMutationsTotal.WithLabelValues("remove"))
	IncLedgerMutation("remove")
	assert.Equal(t, before+1, testutil.ToFloat64(ledgerMutationsTotal.WithLabelValues("remove")))
}
