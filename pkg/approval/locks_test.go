package approval

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThreadLocks_SerializeSameThread(t *testing.T) {
	locks := newThreadLocks()
	release := locks.acquire("th-1")

	acquired := make(chan struct{})
	go func() {
		r := locks.acquire("th-1")
		close(acquired)
		r()
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while the lock was held")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second acquire never proceeded after release")
	}
}

func TestThreadLocks_IndependentThreadsDoNotBlock(t *testing.T) {
	locks := newThreadLocks()
	release := locks.acquire("th-1")
	defer release()

	done := make(chan struct{})
	go func() {
		r := locks.acquire("th-2")
		r()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("unrelated thread blocked behind th-1")
	}
}

func TestThreadLocks_RegistryDrains(t *testing.T) {
	locks := newThreadLocks()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				release := locks.acquire("th-1")
				release()
			}
		}()
	}
	wg.Wait()

	locks.mu.Lock()
	defer locks.mu.Unlock()
	assert.Empty(t, locks.locks)
}
