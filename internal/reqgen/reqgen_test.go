package reqgen

import (
	"sync"
	"testing"
)

func TestTracker_DropsStale(t *testing.T) {
	var tr Tracker

	first := tr.Next("stats")
	second := tr.Next("stats")

	if tr.Current("stats", first) {
		t.Error("superseded generation reported current")
	}
	if !tr.Current("stats", second) {
		t.Error("latest generation not current")
	}
}

func TestTracker_ResourcesIndependent(t *testing.T) {
	var tr Tracker
	a := tr.Next("summary")
	tr.Next("stats")
	s := tr.Next("stats")

	if !tr.Current("summary", a) {
		t.Error("summary generation invalidated by stats")
	}
	if s != 2 || !tr.Current("stats", s) {
		t.Errorf("stats generation = %d, want current 2", s)
	}
}

func TestTracker_ZeroNeverCurrent(t *testing.T) {
	var tr Tracker
	if tr.Current("x", 0) {
		t.Error("zero generation reported current before any Next")
	}
}

func TestTracker_Concurrent(t *testing.T) {
	var tr Tracker
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Next("r")
		}()
	}
	wg.Wait()
	if !tr.Current("r", 50) || tr.Current("r", 49) {
		t.Error("after 50 concurrent Next calls, 50 should be the only current generation")
	}
}
