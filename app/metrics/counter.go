package metrics

import "sync/atomic"

// Counter is a process-wide, monotonically increasing counter that is safe
// for concurrent use.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Inc increments the counter and returns the new total.
func (c *Counter) Inc() int64 {
	return c.n.Add(1)
}

// Value returns the current total.
func (c *Counter) Value() int64 {
	return c.n.Load()
}
