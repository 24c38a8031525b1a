package app

import "sync"

// RoomLocks serializes all mutating operations for a given room. The registry
// and the round engine share one instance so room and game documents are
// always read-modified-written under the same lock.
type RoomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRoomLocks creates an empty lock table
func NewRoomLocks() *RoomLocks {
	return &RoomLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for a room and returns its unlock func
func (l *RoomLocks) Lock(roomID string) func() {
	l.mu.Lock()
	lock, ok := l.locks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[roomID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Forget drops the lock entry for a destroyed room
func (l *RoomLocks) Forget(roomID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, roomID)
}
