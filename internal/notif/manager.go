package notif

import (
	"sync"

	"github.com/charmbracelet/log"

	"campusbuzz/internal/common"
)

// NotificationManager fans a ledger event out to its observers on the
// caller's goroutine, in subscription order. A failing observer is logged
// and does not stop the others.
type NotificationManager struct {
	observers []common.Observer
	mu        sync.RWMutex
	logger    *log.Logger
}

var _ common.Subject = (*NotificationManager)(nil)

func NewNotificationManager(logger *log.Logger) *NotificationManager {
	if logger == nil {
		logger = log.Default()
	}
	return &NotificationManager{logger: logger}
}

// Subscribe replaces an observer already registered under the same name.
func (nm *NotificationManager) Subscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()

	for i, existing := range nm.observers {
		if existing.Name() == observer.Name() {
			nm.observers[i] = observer
			return
		}
	}
	nm.observers = append(nm.observers, observer)
	nm.logger.Debug("observer subscribed", "observer", observer.Name())
}

func (nm *NotificationManager) Unsubscribe(observer common.Observer) {
	nm.mu.Lock()
	defer nm.mu.Unlock()

	for i, existing := range nm.observers {
		if existing.Name() == observer.Name() {
			nm.observers = append(nm.observers[:i], nm.observers[i+1:]...)
			nm.logger.Debug("observer unsubscribed", "observer", observer.Name())
			return
		}
	}
}

func (nm *NotificationManager) Notify(event common.LedgerEvent) {
	nm.mu.RLock()
	observers := make([]common.Observer, len(nm.observers))
	copy(observers, nm.observers)
	nm.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			nm.logger.Warn("observer update failed", "observer", observer.Name(), "err", err)
		}
	}
}
