package render

import (
	"sync"

	"github.com/grindlemire/go-layout2d/internal/layout"
)

// Scheduler coalesces redraw requests from render cores. Each node is
// queued at most once until the next Drain.
//
// Request never blocks on the consumer; the optional notify callback is
// invoked once when the queue goes from empty to non-empty.
type Scheduler struct {
	mu       sync.Mutex
	pending  []*layout.Node
	queued   map[*layout.Node]struct{}
	requests int
	notify   func()
}

// NewScheduler creates a Scheduler. notify may be nil.
func NewScheduler(notify func()) *Scheduler {
	return &Scheduler{
		queued: make(map[*layout.Node]struct{}),
		notify: notify,
	}
}

// Request queues n for redraw.
func (s *Scheduler) Request(n *layout.Node) {
	s.mu.Lock()
	s.requests++
	wasEmpty := len(s.pending) == 0
	if _, ok := s.queued[n]; !ok {
		s.queued[n] = struct{}{}
		s.pending = append(s.pending, n)
	}
	notify := s.notify
	s.mu.Unlock()

	if wasEmpty && notify != nil {
		notify()
	}
}

// Pending returns the number of distinct nodes waiting for a redraw.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Requests returns the total number of requests since creation, including
// duplicates.
func (s *Scheduler) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Drain returns the queued nodes in request order and empties the queue.
func (s *Scheduler) Drain() []*layout.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	nodes := s.pending
	s.pending = nil
	clear(s.queued)
	return nodes
}
