package log

import (
	"sync"
)

// Transport receives every [Record] produced in a logger tree from the moment
// it is attached. Transports are called one record at a time, in emission
// order. A record logged from inside a transport is queued and delivered once
// the current record has reached every transport.
type Transport func(Record)

// pending is a record waiting for delivery to the first n transports.
type pending struct {
	r Record
	n int
}

// sink buffers records until the first transport is attached and fans them
// out to every attached transport afterwards.
//
// At most one goroutine delivers at a time. Records dispatched while a
// delivery is in progress are queued and handed over by the delivering
// goroutine, so transports never run under the lock.
type sink struct {
	mu         sync.Mutex
	draining   bool
	delivering bool
	records    []Record
	queue      []pending
	limit      int
	dropped    uint64
	transports []Transport
}

func newSink(limit int) *sink {
	return &sink{
		records: make([]Record, 0, 32),
		limit:   max(limit, 0),
	}
}

// dispatch buffers r or queues it for every transport attached so far.
func (s *sink) dispatch(r Record) {
	s.mu.Lock()

	if !s.draining {
		defer s.mu.Unlock()

		if s.limit > 0 && len(s.records) >= s.limit {
			// Keep the newest records when a bound is configured.
			s.records = append(s.records[:0], s.records[1:]...)
			s.dropped++
		}

		s.records = append(s.records, r)

		return
	}

	s.queue = append(s.queue, pending{r: r, n: len(s.transports)})
	s.deliver()
}

// attach registers t. The first attachment replays and discards the buffer;
// later attachments receive only records dispatched after they were attached.
func (s *sink) attach(t Transport) error {
	if t == nil {
		return ErrNilTransport
	}

	s.mu.Lock()

	s.transports = append(s.transports, t)

	if !s.draining {
		s.draining = true

		for _, r := range s.records {
			s.queue = append(s.queue, pending{r: r, n: len(s.transports)})
		}

		s.records = nil
	}

	s.deliver()

	return nil
}

// deliver drains the queue unless another call is already doing so.
// It must be called with s.mu held and returns with it released.
func (s *sink) deliver() {
	if s.delivering {
		s.mu.Unlock()

		return
	}

	s.delivering = true

	defer func() {
		s.delivering = false
		s.mu.Unlock()
	}()

	for len(s.queue) > 0 {
		p := s.queue[0]
		s.queue = s.queue[1:]

		// Transports are only ever appended, so the prefix is stable.
		targets := s.transports[:p.n]

		s.mu.Unlock()

		func() {
			defer s.mu.Lock()

			for _, t := range targets {
				t(p.r)
			}
		}()
	}

	s.queue = nil
}

func (s *sink) buffering() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.draining
}

func (s *sink) buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

func (s *sink) droppedCount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dropped
}
