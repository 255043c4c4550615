package leaktest

import (
	"sync"
	"testing"
	"time"
)

// recordingTB captures Errorf without failing the outer test
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper()               {}
func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, time.Second, func() {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
		wg.Wait()
	})
}

func TestGoroutineChecker_WaitsForStragglers(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(30 * time.Millisecond)
	}()

	checker.Check(0, time.Second)
}

func TestGoroutineChecker_ReportsLeak(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	checker.Check(0, 50*time.Millisecond)
	if !rec.failed {
		t.Error("expected a leak to be reported")
	}
}

func TestGoroutineChecker_Tolerance(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	checker.Check(1, 50*time.Millisecond)
	if rec.failed {
		t.Error("a leak within tolerance was reported")
	}
}
