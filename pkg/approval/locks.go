package approval

import "sync"

// threadLocks hands out one mutex per thread so approval decisions on the
// same thread serialize. The lock covers response scans and metadata
// updates only; callers release it before any calendar HTTP. Entries are
// reference-counted and dropped when the last holder releases, so the
// registry stays as small as the set of threads being decided right now.
type threadLocks struct {
	mu    sync.Mutex
	locks map[string]*threadLock
}

type threadLock struct {
	mu   sync.Mutex
	refs int
}

func newThreadLocks() *threadLocks {
	return &threadLocks{locks: make(map[string]*threadLock)}
}

// acquire blocks until the thread's mutex is held and returns the release
// func. Release exactly once; defer is the intended shape.
func (t *threadLocks) acquire(threadID string) (release func()) {
	t.mu.Lock()
	l, ok := t.locks[threadID]
	if !ok {
		l = &threadLock{}
		t.locks[threadID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, threadID)
		}
		t.mu.Unlock()
	}
}
