package concurrency

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockManager_SameKeySameLock(t *testing.T) {
	lm := NewLockManager(8)
	assert.Same(t, lm.GetLock("farmer-1"), lm.GetLock("farmer-1"))
	assert.Len(t, lm.locks, 8)

	assert.Len(t, NewLockManager(0).locks, DefaultStripes)
}

func TestLockManager_Do(t *testing.T) {
	lm := NewLockManager(4)
	counts := map[string]int{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lm.Do("farmer-1", func() { counts["farmer-1"]++ })
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counts["farmer-1"])
}

func TestLockManager_DoAllWaitsForHolders(t *testing.T) {
	lm := NewLockManager(4)
	mu := lm.GetLock("farmer-1")
	mu.Lock()

	done := make(chan struct{})
	go func() {
		lm.DoAll(func() {})
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("DoAll ran while a stripe was held")
	case <-time.After(20 * time.Millisecond):
	}

	mu.Unlock()
	<-done
	assert.True(t, mu.TryLock(), "DoAll releases every stripe")
	mu.Unlock()
}
