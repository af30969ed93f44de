package store

import (
	"log"
	"sync"

	"delivery-storefront/storefront/internal/domain"
)

// DefaultFeedLimit caps the feed; the oldest entries are dropped first.
const DefaultFeedLimit = 200

// Feed accumulates notifications newest-first and derives the unread count.
type Feed struct {
	mu            sync.Mutex
	notifications []domain.Notification
	unread        int
	limit         int
}

func NewFeed() *Feed {
	return NewFeedWithLimit(DefaultFeedLimit)
}

func NewFeedWithLimit(limit int) *Feed {
	return &Feed{limit: limit}
}

func (f *Feed) Add(n domain.Notification) {
	f.mu.Lock()
	f.notifications = append([]domain.Notification{n}, f.notifications...)
	if f.limit > 0 && len(f.notifications) > f.limit {
		f.notifications = f.notifications[:f.limit]
	}
	f.recount()
	f.mu.Unlock()

	// Toast line for the statuses a user is actively waiting on.
	if n.Type == domain.NotificationOrderStatus || n.Type == domain.NotificationDeliveryUpdate {
		log.Printf("🔔 %s: %s", n.Title, n.Message)
	}
}

func (f *Feed) MarkAsRead(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notifications {
		if f.notifications[i].ID == id {
			f.notifications[i].Read = true
		}
	}
	f.recount()
}

func (f *Feed) MarkAllAsRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notifications {
		f.notifications[i].Read = true
	}
	f.recount()
}

func (f *Feed) Remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.notifications[:0]
	for _, n := range f.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	f.notifications = kept
	f.recount()
}

func (f *Feed) ClearAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = nil
	f.recount()
}

func (f *Feed) Notifications() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Notification(nil), f.notifications...)
}

func (f *Feed) Unread() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Notification
	for _, n := range f.notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unread
}

// recount rederives the unread counter. Callers must hold the lock.
func (f *Feed) recount() {
	count := 0
	for _, n := range f.notifications {
		if !n.Read {
			count++
		}
	}
	f.unread = count
}
