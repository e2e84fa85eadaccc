// Package notice keeps the panel's transient notifications (toasts).
// Every host-call failure ends up here as a message; none of them is
// fatal to the process.
package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notice.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice is one transient notification.
type Notice struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	Kind    Kind      `json:"kind"`
	At      time.Time `json:"at"`
}

// Center holds a bounded ring of recent notices and forwards each new
// one to an optional publish hook (the SSE broker).
type Center struct {
	mu      sync.Mutex
	recent  []Notice
	max     int
	publish func(Notice)
}

// NewCenter creates a notice center keeping at most max recent
// notices. publish may be nil.
func NewCenter(max int, publish func(Notice)) *Center {
	if max <= 0 {
		max = 50
	}
	return &Center{max: max, publish: publish}
}

// Post records a notice and publishes it.
func (c *Center) Post(message string, kind Kind) Notice {
	n := Notice{
		ID:      uuid.NewString(),
		Message: message,
		Kind:    kind,
		At:      time.Now(),
	}

	c.mu.Lock()
	c.recent = append(c.recent, n)
	if len(c.recent) > c.max {
		c.recent = c.recent[len(c.recent)-c.max:]
	}
	c.mu.Unlock()

	if c.publish != nil {
		c.publish(n)
	}
	return n
}

// Recent returns the retained notices, oldest first.
func (c *Center) Recent() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.recent))
	copy(out, c.recent)
	return out
}
