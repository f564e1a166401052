package lock

import (
	"sync"

	"github.com/apex/log"
)

// IdLocker serializes work on a single id while letting work on other ids proceed. The
// feature controller uses it so two first requests for the same file don't both generate
// features.
type IdLocker struct {
	mapMutex sync.Mutex
	idMap    map[int]*sync.Mutex
}

func NewIdLocker() *IdLocker {
	return &IdLocker{
		idMap: make(map[int]*sync.Mutex),
	}
}

func (l *IdLocker) mutexFor(id int, create bool) *sync.Mutex {
	l.mapMutex.Lock()
	defer l.mapMutex.Unlock()

	idMutex, ok := l.idMap[id]
	if !ok && create {
		idMutex = &sync.Mutex{}
		l.idMap[id] = idMutex
	}

	return idMutex
}

func (l *IdLocker) AcquireLock(id int) {
	// Lock outside of mapMutex so waiting on one id doesn't block the others.
	l.mutexFor(id, true).Lock()
}

func (l *IdLocker) ReleaseLock(id int) {
	m := l.mutexFor(id, false)
	if m == nil {
		log.Errorf("ReleaseLock called on id (%d) with no mutex", id)
		return
	}

	m.Unlock()
}

func (l *IdLocker) WithLock(id int, f func() error) error {
	l.AcquireLock(id)
	defer l.ReleaseLock(id)
	return f()
}
