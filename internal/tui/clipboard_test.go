// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClipboard is an in-memory Clipboard.
type fakeClipboard struct {
	mu      sync.Mutex
	text    string
	writes  int
	failErr error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failErr != nil {
		return f.failErr
	}
	f.text = text
	f.writes++
	return nil
}

func (f *fakeClipboard) ReadAll() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text, nil
}

func (f *fakeClipboard) Text() string {
	text, _ := f.ReadAll()
	return text
}

func TestClearIfUnchanged(t *testing.T) {
	clip := &fakeClipboard{text: "secret"}
	require.NoError(t, ClearIfUnchanged(clip, "secret"))
	assert.Empty(t, clip.Text())

	clip = &fakeClipboard{text: "user copied something else"}
	require.NoError(t, ClearIfUnchanged(clip, "secret"))
	assert.Equal(t, "user copied something else", clip.Text())
}

func TestCopyAndWait_ClearsAfterDelay(t *testing.T) {
	clip := &fakeClipboard{}

	start := time.Now()
	require.NoError(t, CopyAndWait(context.Background(), clip, "secret", 20*time.Millisecond))

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Empty(t, clip.Text())
	assert.Equal(t, 2, clip.writes)
}

func TestCopyAndWait_ContextCancelClearsEarly(t *testing.T) {
	clip := &fakeClipboard{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, CopyAndWait(ctx, clip, "secret", time.Hour))
	assert.Empty(t, clip.Text())
}

func TestCopyAndWait_WriteFails(t *testing.T) {
	boom := errors.New("no clipboard")
	clip := &fakeClipboard{failErr: boom}

	assert.ErrorIs(t, CopyAndWait(context.Background(), clip, "secret", time.Millisecond), boom)
}

func TestCopyAndClearLater(t *testing.T) {
	clip := &fakeClipboard{}

	done, err := CopyAndClearLater(context.Background(), clip, "secret", 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "secret", clip.Text())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clipboard was not cleared")
	}
	assert.Empty(t, clip.Text())
}
