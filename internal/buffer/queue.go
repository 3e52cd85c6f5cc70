// Package buffer provides the unbounded FIFO bridging non-blocking
// producers to channel consumers.
package buffer

import "sync"

// Queue accepts items without ever blocking the producer and delivers them
// in order on a channel. A single pump goroutine does the blocking channel
// send, so a slow consumer backs up the queue, not the producer.
//
//	q := buffer.NewQueue[string]()
//	go func() {
//	    for item := range q.Out() {
//	        handle(item)
//	    }
//	}()
//	q.Push("a")
//	q.Push("b")
//	q.Close()
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	wake   chan struct{}
	out    chan T
	closed bool
}

// NewQueue creates a Queue and starts its pump goroutine.
func NewQueue[T any]() *Queue[T] {
	q := &Queue[T]{
		wake: make(chan struct{}, 1),
		out:  make(chan T),
	}
	go q.pump()
	return q
}

// Push appends one item. It never blocks. After Close it is a no-op.
func (q *Queue[T]) Push(item T) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.notify()
}

// Out returns the delivery channel. It closes after Close, once every
// buffered item has been delivered, so consumers must keep draining it.
func (q *Queue[T]) Out() <-chan T {
	return q.out
}

// Close stops accepting items. Items already buffered are still delivered.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	q.notify()
}

// notify wakes the pump. The wake channel has capacity one, so a signal is
// never lost and never blocks.
func (q *Queue[T]) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue[T]) pump() {
	for {
		q.mu.Lock()
		for len(q.items) == 0 {
			if q.closed {
				q.mu.Unlock()
				close(q.out)
				return
			}
			q.mu.Unlock()
			<-q.wake
			q.mu.Lock()
		}
		item := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		q.out <- item
	}
}
