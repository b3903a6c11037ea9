package core

import (
	"sync"
	"testing"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionTurnLeft) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionTurnLeft)
	f.Set(ActionPause)
	if !f.Has(ActionTurnLeft) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionTurnRight) {
		t.Error("Unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionTurnLeft) || f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestHeadingInboxKeepsLatest(t *testing.T) {
	var inbox HeadingInbox

	if _, ok := inbox.Take(); ok {
		t.Fatal("Empty inbox should report no heading")
	}

	inbox.Put(0.5)
	inbox.Put(1.5)
	inbox.Put(-2.0)

	got, ok := inbox.Take()
	if !ok || got != -2.0 {
		t.Errorf("Take() = (%f, %v), expected (-2.0, true)", got, ok)
	}

	// Drained until the next Put
	if _, ok := inbox.Take(); ok {
		t.Error("Second Take without Put should report no heading")
	}
}

func TestHeadingInboxConcurrentProducers(t *testing.T) {
	var inbox HeadingInbox
	var wg sync.WaitGroup

	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				inbox.Put(float64(p))
			}
		}(p)
	}
	wg.Wait()

	got, ok := inbox.Take()
	if !ok {
		t.Fatal("Expected a heading after concurrent puts")
	}
	if got < 0 || got > 3 {
		t.Errorf("Take() = %f, expected one of the produced values", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionTurnLeft.String() != "TurnLeft" {
		t.Errorf("ActionTurnLeft.String() = %q", ActionTurnLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
