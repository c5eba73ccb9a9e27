package transport

import (
	"slices"
	"sync"

	"github.com/ardnew/logtree/log"
)

// Collector keeps every record it receives in memory.
// The zero value is ready to use.
type Collector struct {
	mu      sync.Mutex
	records []log.Record
}

// Transport returns the transport that appends to c.
func (c *Collector) Transport() log.Transport {
	return func(r log.Record) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.records = append(c.records, r)
	}
}

// Records returns a copy of the records collected so far, in arrival order.
func (c *Collector) Records() []log.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.records)
}

// Len returns the number of records collected.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.records)
}

// Reset discards all collected records.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = nil
}
