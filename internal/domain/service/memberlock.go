package service

import "sync"

// memberLocks serializes the commands that change one member. Entries are
// dropped once nobody holds or waits for them.
type memberLocks struct {
	mu    sync.Mutex
	locks map[string]*memberLock
}

type memberLock struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until memberID is free and returns the matching unlock.
func (l *memberLocks) lock(memberID string) (unlock func()) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*memberLock)
	}
	ml, ok := l.locks[memberID]
	if !ok {
		ml = &memberLock{}
		l.locks[memberID] = ml
	}
	ml.refs++
	l.mu.Unlock()

	ml.mu.Lock()
	return func() {
		ml.mu.Unlock()

		l.mu.Lock()
		ml.refs--
		if ml.refs == 0 {
			delete(l.locks, memberID)
		}
		l.mu.Unlock()
	}
}

func (l *memberLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
