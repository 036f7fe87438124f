package service

import "sync"

type userKey struct {
	chatID int64
	userID int64
}

// keyedMutex serializes work per (chat, user) and forgets idle keys
type keyedMutex struct {
	mu    sync.Mutex
	locks map[userKey]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[userKey]*refMutex)}
}

// Lock blocks until the key is free and returns its unlock function
func (k *keyedMutex) Lock(key userKey) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
