// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Lockable is what [AutoLockJob] needs from an unlocked session.
type Lockable interface {
	IdleFor() time.Duration
	Locked() bool
	Lock()
}

// AutoLockJob locks a session once it has been idle for a timeout.
type AutoLockJob interface {
	// Start launches the background watcher. A running watcher is stopped
	// first.
	Start(ctx context.Context, session Lockable, timeout time.Duration)

	// Stop stops the watcher and waits for it to exit.
	Stop()
}

const (
	defaultAutoLockTimeout = 5 * time.Minute
	minAutoLockInterval    = time.Millisecond
)

type autoLockJob struct {
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewAutoLockJob creates an idle [AutoLockJob]. Nothing runs until Start.
func NewAutoLockJob(logger *logger.Logger) AutoLockJob {
	return &autoLockJob{logger: logger}
}

// Start implements AutoLockJob. The session is checked four times per
// timeout and locked once IdleFor reaches timeout. A zero or negative
// timeout defaults to 5 minutes. The goroutine exits after locking, when
// the session is found locked, when ctx is cancelled or on Stop.
func (j *autoLockJob) Start(ctx context.Context, session Lockable, timeout time.Duration) {
	if timeout <= 0 {
		timeout = defaultAutoLockTimeout
	}
	interval := max(timeout/4, minAutoLockInterval)

	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if session.Locked() {
					return
				}
				if idle := session.IdleFor(); idle >= timeout {
					session.Lock()
					j.logger.Info().Dur("idle", idle).Msg("session locked after inactivity")
					return
				}
			}
		}
	}()
}

// Stop implements AutoLockJob. It blocks until the goroutine has exited and
// is a no-op when the job is not running.
func (j *autoLockJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopLocked()
}

// stopLocked cancels the running watcher and waits for it. The caller must
// hold mu; the watcher goroutine never takes it.
func (j *autoLockJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
