package agent

import (
	"sync"
	"time"
)

const (
	activityCap          = 50
	defaultActivityLimit = 20
)

// ActivityLog is the bounded, most-recent-first feed of task lifecycle
// events. An optional notifier receives every new entry (used for the
// websocket push).
type ActivityLog struct {
	mu      sync.Mutex
	entries []ActivityEntry
	nextID  int
	notify  func(ActivityEntry)
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{nextID: 1}
}

// SetNotifier installs a callback invoked for every recorded entry.
func (l *ActivityLog) SetNotifier(fn func(ActivityEntry)) {
	l.mu.Lock()
	l.notify = fn
	l.mu.Unlock()
}

// Record prepends a new entry and drops the oldest ones beyond the cap.
func (l *ActivityLog) Record(kind ActivityKind, message string, taskID *int) ActivityEntry {
	l.mu.Lock()
	entry := ActivityEntry{
		ID:      l.nextID,
		Kind:    kind,
		Message: message,
		TaskID:  taskID,
		Time:    time.Now(),
	}
	l.nextID++

	l.entries = append([]ActivityEntry{entry}, l.entries...)
	if len(l.entries) > activityCap {
		l.entries = l.entries[:activityCap]
	}
	notify := l.notify
	l.mu.Unlock()

	if notify != nil {
		notify(entry)
	}
	return entry
}

// Recent returns the newest entries, most recent first. A non-positive
// limit falls back to the default of 20.
func (l *ActivityLog) Recent(limit int) []ActivityEntry {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]ActivityEntry, limit)
	copy(out, l.entries[:limit])
	return out
}
