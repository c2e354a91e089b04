package services

import "sync"

// accountLocker hands out one mutex per account so the validate-then-mutate
// sequence of the executor is serialized per account within the process.
// Mutexes are created on first use and never evicted.
type accountLocker struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[int64]*sync.Mutex)}
}

func (l *accountLocker) get(accountID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[accountID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountID] = m
	}
	return m
}

// Lock acquires the mutex for a single account and returns its unlock func.
func (l *accountLocker) Lock(accountID int64) func() {
	m := l.get(accountID)
	m.Lock()
	return m.Unlock
}

// LockPair acquires the mutexes for two distinct accounts in ascending ID
// order, so two transfers crossing in opposite directions cannot deadlock.
func (l *accountLocker) LockPair(a, b int64) func() {
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	fm, sm := l.get(first), l.get(second)
	fm.Lock()
	sm.Lock()
	return func() {
		sm.Unlock()
		fm.Unlock()
	}
}
