// Package inactivity enforces a rolling idle timeout for an open
// authenticated session. It owns a plain counter polled on a ticker:
// interaction events reset the counter instead of rescheduling a timer,
// so resets stay cheap no matter how often they fire.
package inactivity

import (
	"context"
	"sync"
	"time"

	"github.com/ASTRELLECT/SynVotra/pkg/logger"
)

type Monitor struct {
	threshold time.Duration
	tick      time.Duration
	onExpire  func()

	mu      sync.Mutex
	idle    time.Duration
	expired bool

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMonitor builds a monitor that calls onExpire once the idle time
// reaches threshold. The counter advances every tick.
func NewMonitor(threshold, tick time.Duration, onExpire func()) *Monitor {
	return &Monitor{
		threshold: threshold,
		tick:      tick,
		onExpire:  onExpire,
		stop:      make(chan struct{}),
	}
}

// Start runs the idle loop until the threshold is hit, Stop is called
// or ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(m.tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if m.advance(ctx) {
					return
				}
			case <-m.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Activity resets the idle counter. Ignored once expired: the state is
// terminal for this monitor instance.
func (m *Monitor) Activity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.expired {
		return
	}
	m.idle = 0
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Monitor) Expired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expired
}

// advance moves the counter one tick and reports whether the loop is
// done. A panic out of the expiry callback must not kill the loop: a
// single failed logout attempt would otherwise silently disable the
// control.
func (m *Monitor) advance(ctx context.Context) (done bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log(ctx).Errorf("inactivity: tick failed, %v", r)
		}
	}()

	m.mu.Lock()
	if m.expired {
		m.mu.Unlock()
		return true
	}
	m.idle += m.tick
	if m.idle < m.threshold {
		m.mu.Unlock()
		return false
	}
	m.expired = true
	m.mu.Unlock()

	if m.onExpire != nil {
		m.onExpire()
	}
	return true
}
