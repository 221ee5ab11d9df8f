// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// spySession reports a fixed idle time and counts Lock calls.
type spySession struct {
	idle   atomic.Int64
	locked atomic.Bool
	locks  atomic.Int64
	checks atomic.Int64
}

func (s *spySession) IdleFor() time.Duration {
	s.checks.Add(1)
	return time.Duration(s.idle.Load())
}

func (s *spySession) Locked() bool {
	return s.locked.Load()
}

func (s *spySession) Lock() {
	s.locks.Add(1)
	s.locked.Store(true)
}

func TestNewAutoLockJob_ReturnsInterface(t *testing.T) {
	job := NewAutoLockJob(logger.Nop())
	require.NotNil(t, job)

	var _ AutoLockJob = job
}

func TestAutoLockJob_LocksIdleSession(t *testing.T) {
	spy := &spySession{}
	spy.idle.Store(int64(time.Hour))

	job := NewAutoLockJob(logger.Nop())
	job.Start(context.Background(), spy, 20*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, spy.locked.Load, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(1), spy.locks.Load())
}

func TestAutoLockJob_KeepsActiveSessionOpen(t *testing.T) {
	spy := &spySession{}

	job := NewAutoLockJob(logger.Nop())
	job.Start(context.Background(), spy, 20*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	job.Stop()

	assert.False(t, spy.locked.Load())
	assert.GreaterOrEqual(t, spy.checks.Load(), int64(3), "idle time checked: %d", spy.checks.Load())
}

func TestAutoLockJob_ExitsWhenSessionLockedElsewhere(t *testing.T) {
	spy := &spySession{}
	spy.locked.Store(true)

	job := NewAutoLockJob(logger.Nop())
	job.Start(context.Background(), spy, 8*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.checks.Load())
	assert.Zero(t, spy.locks.Load())
}

func TestAutoLockJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySession{}

	job := NewAutoLockJob(logger.Nop())
	job.Start(context.Background(), spy, 8*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	after := spy.checks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.checks.Load(), "no checks after Stop")
}

func TestAutoLockJob_Stop_WithoutStart(t *testing.T) {
	job := NewAutoLockJob(logger.Nop())
	assert.NotPanics(t, job.Stop)
}

func TestAutoLockJob_ContextCancelStopsJob(t *testing.T) {
	spy := &spySession{}
	ctx, cancel := context.WithCancel(context.Background())

	job := NewAutoLockJob(logger.Nop())
	job.Start(ctx, spy, 8*time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancel")
	}
}

func TestAutoLockJob_RestartReplacesWatcher(t *testing.T) {
	first := &spySession{}
	second := &spySession{}
	second.idle.Store(int64(time.Hour))

	job := NewAutoLockJob(logger.Nop())
	job.Start(context.Background(), first, 8*time.Millisecond)
	job.Start(context.Background(), second, 8*time.Millisecond)
	defer job.Stop()

	assert.Eventually(t, second.locked.Load, time.Second, 2*time.Millisecond)

	checks := first.checks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, checks, first.checks.Load())
	assert.False(t, first.locked.Load())
}

func TestAutoLockJob_WithRealSession(t *testing.T) {
	s, _, clock := newTestSession(t)

	job := NewAutoLockJob(logger.Nop())
	job.Start(context.Background(), s, 40*time.Millisecond)
	defer job.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.False(t, s.Locked(), "fake clock has not moved")

	s.mu.Lock()
	clock.Advance(time.Minute)
	s.mu.Unlock()

	assert.Eventually(t, s.Locked, time.Second, 5*time.Millisecond)

	_, err := s.Credentials()
	assert.ErrorIs(t, err, ErrSessionLocked)
}

func TestAutoLockJob_ConcurrentStartLeavesOneWatcher(t *testing.T) {
	job := NewAutoLockJob(logger.Nop())
	spies := make([]*spySession, 8)

	var wg sync.WaitGroup
	for i := range spies {
		spies[i] = &spySession{}
		wg.Add(1)
		go func(spy *spySession) {
			defer wg.Done()
			job.Start(context.Background(), spy, 8*time.Millisecond)
		}(spies[i])
	}
	wg.Wait()

	job.Stop()

	before := make([]int64, len(spies))
	for i, spy := range spies {
		before[i] = spy.checks.Load()
	}

	time.Sleep(40 * time.Millisecond)

	for i, spy := range spies {
		assert.Equal(t, before[i], spy.checks.Load(), "watcher %d still running after Stop", i)
	}
}
