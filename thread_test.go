package gosched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThread_RunHandoffBlocksUntilReleased(t *testing.T) {
	th := newThread(1, 2, func(int) {})

	done := make(chan struct{})
	go func() {
		th.acquireRun()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("acquireRun returned before releaseRun was called")
	case <-time.After(20 * time.Millisecond):
	}

	th.releaseRun()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquireRun never returned after releaseRun")
	}
}

func TestThread_PlannedHandoffBlocksUntilReleased(t *testing.T) {
	th := newThread(1, 2, func(int) {})

	done := make(chan struct{})
	go func() {
		th.acquirePlanned()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("acquirePlanned returned before releasePlanned was called")
	case <-time.After(20 * time.Millisecond):
	}

	th.releasePlanned()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquirePlanned never returned after releasePlanned")
	}
}

func TestThread_StatusString(t *testing.T) {
	assert.Equal(t, "alive", StatusAlive.String())
	assert.Equal(t, "terminated", StatusTerminated.String())
	assert.Equal(t, "unknown", ThreadStatus(99).String())
}

func TestInvalidTID_IsZero(t *testing.T) {
	assert.Equal(t, TID(0), InvalidTID)
}
