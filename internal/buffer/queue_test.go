package buffer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_DeliversInOrder(t *testing.T) {
	q := NewQueue[int]()
	for i := 0; i < 100; i++ {
		q.Push(i)
	}
	q.Close()

	var received []int
	for item := range q.Out() {
		received = append(received, item)
	}

	require.Len(t, received, 100)
	for i, item := range received {
		assert.Equal(t, i, item)
	}
}

func TestQueue_PushNeverBlocks(t *testing.T) {
	q := NewQueue[int]()

	// No consumer is draining. Every push must still return promptly.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			q.Push(i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Push blocked without a consumer")
	}

	q.Close()
	count := 0
	for range q.Out() {
		count++
	}
	assert.Equal(t, 10000, count)
}

func TestQueue_CloseDrainsBufferedItems(t *testing.T) {
	q := NewQueue[string]()
	q.Push("a")
	q.Push("b")
	q.Close()

	assert.Equal(t, "a", <-q.Out())
	assert.Equal(t, "b", <-q.Out())

	_, open := <-q.Out()
	assert.False(t, open)
}

func TestQueue_PushAfterCloseIsDropped(t *testing.T) {
	q := NewQueue[int]()
	q.Push(1)
	q.Close()
	q.Push(2)

	var received []int
	for item := range q.Out() {
		received = append(received, item)
	}
	assert.Equal(t, []int{1}, received)
}

func TestQueue_CloseTwice(t *testing.T) {
	q := NewQueue[int]()
	q.Close()
	q.Close()

	_, open := <-q.Out()
	assert.False(t, open)
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	q := NewQueue[int]()

	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				q.Push(i)
			}
		}()
	}

	received := make(chan int)
	go func() {
		count := 0
		for range q.Out() {
			count++
		}
		received <- count
	}()

	wg.Wait()
	q.Close()
	assert.Equal(t, 8*500, <-received)
}
