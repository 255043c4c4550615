package concurrency

import (
	"hash/maphash"
	"sync"
)

// DefaultStripes is the lock count used when none is given
const DefaultStripes = 64

// LockManager maps keys onto a fixed set of mutexes. Two keys may share a
// mutex; a key always gets the same one.
type LockManager struct {
	seed  maphash.Seed
	locks []sync.Mutex
}

// NewLockManager creates a LockManager with the given number of stripes
func NewLockManager(stripes int) *LockManager {
	if stripes <= 0 {
		stripes = DefaultStripes
	}
	return &LockManager{
		seed:  maphash.MakeSeed(),
		locks: make([]sync.Mutex, stripes),
	}
}

// GetLock returns the mutex for key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	return &lm.locks[maphash.String(lm.seed, key)%uint64(len(lm.locks))]
}

// Do runs fn while holding the lock for key
func (lm *LockManager) Do(key string, fn func()) {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	fn()
}

// DoAll runs fn while holding every stripe. Stripes are taken in index order.
func (lm *LockManager) DoAll(fn func()) {
	for i := range lm.locks {
		lm.locks[i].Lock()
	}
	defer func() {
		for i := range lm.locks {
			lm.locks[i].Unlock()
		}
	}()
	fn()
}
