package inactivity

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpiresExactlyOnce(t *testing.T) {
	var fired int32
	m := NewMonitor(60*time.Millisecond, 10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, time.Second, 5*time.Millisecond)

	// Well past the threshold: still exactly one invocation.
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
	assert.True(t, m.Expired())
}

func TestActivityResetsIdleCounter(t *testing.T) {
	var fired int32
	m := NewMonitor(400*time.Millisecond, 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	m.Start(context.Background())
	defer m.Stop()

	// Keep poking well inside the threshold; no expiry may fire.
	for i := 0; i < 5; i++ {
		time.Sleep(100 * time.Millisecond)
		m.Activity()
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
	assert.False(t, m.Expired())

	// Go silent and the timeout lands.
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStopPreventsExpiry(t *testing.T) {
	var fired int32
	m := NewMonitor(80*time.Millisecond, 10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	m.Start(context.Background())
	m.Stop()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
	assert.False(t, m.Expired())
}

func TestContextCancelStopsLoop(t *testing.T) {
	var fired int32
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMonitor(80*time.Millisecond, 10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	m.Start(ctx)
	cancel()

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestPanickingCallbackDoesNotKillTheLoop(t *testing.T) {
	var fired int32
	m := NewMonitor(40*time.Millisecond, 10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
		panic("logout blew up")
	})
	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&fired) == 1
	}, time.Second, 5*time.Millisecond)

	// The panic is logged; the monitor still reaches its terminal
	// state without crashing the process.
	require.Eventually(t, m.Expired, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestActivityAfterExpiryIsIgnored(t *testing.T) {
	m := NewMonitor(30*time.Millisecond, 10*time.Millisecond, func() {})
	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, m.Expired, time.Second, 5*time.Millisecond)

	m.Activity()
	assert.True(t, m.Expired())
}
