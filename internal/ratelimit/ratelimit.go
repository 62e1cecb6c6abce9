// Package ratelimit bounds how often an actor may mutate applications.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter reports whether one more request under key fits the window.
type Limiter interface {
	Allow(key string) bool
}

// MemoryLimiter is a fixed-window counter for single-instance runs.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	windows map[string]window
}

type window struct {
	start time.Time
	count int
}

func NewMemoryLimiter(limit int, windowSize time.Duration) *MemoryLimiter {
	return &MemoryLimiter{limit: limit, window: windowSize, now: time.Now, windows: make(map[string]window)}
}

func (l *MemoryLimiter) Allow(key string) bool {
	if l.limit <= 0 || l.window <= 0 || key == "" {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	w := l.windows[key]
	if now.Sub(w.start) >= l.window {
		w = window{start: now}
	}
	w.count++
	l.windows[key] = w
	return w.count <= l.limit
}
