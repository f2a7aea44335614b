// File: server/errqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import (
	"sync"

	"github.com/eapache/queue"
)

// errQueue is the engine's fatal-error mailbox: multi-producer, single
// consumer, unbounded so a posting worker never blocks. Only the first
// posted error is ever consumed; later entries are abandoned together with
// the queue when Run returns.
type errQueue struct {
	mu   sync.Mutex
	cond *sync.Cond
	q    *queue.Queue
}

func newErrQueue() *errQueue {
	e := &errQueue{q: queue.New()}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Send posts one error. It never blocks.
func (e *errQueue) Send(err error) {
	e.mu.Lock()
	e.q.Add(err)
	e.mu.Unlock()
	e.cond.Signal()
}

// Recv blocks until an error is available and pops the oldest one.
func (e *errQueue) Recv() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for e.q.Length() == 0 {
		e.cond.Wait()
	}
	return e.q.Remove().(error)
}
