// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard is the subset of the system clipboard the vault uses.
type Clipboard interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// SystemClipboard talks to the OS clipboard through atotto/clipboard.
type SystemClipboard struct {
}

func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnavailable
	}
	return clipboard.ReadAll()
}

// ClearIfUnchanged empties the clipboard only while it still holds text, so
// anything the user copied in the meantime survives.
func ClearIfUnchanged(clip Clipboard, text string) error {
	current, err := clip.ReadAll()
	if err != nil {
		return err
	}
	if current != text {
		return nil
	}
	return clip.WriteAll("")
}

// CopyAndWait copies text, then blocks until after has elapsed or ctx is
// done and clears the clipboard either way.
func CopyAndWait(ctx context.Context, clip Clipboard, text string, after time.Duration) error {
	if err := clip.WriteAll(text); err != nil {
		return err
	}

	t := time.NewTimer(after)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}

	return ClearIfUnchanged(clip, text)
}

// CopyAndClearLater copies text and clears it after the delay in the
// background. The returned channel is closed once the clipboard has been
// cleared or ctx is done.
func CopyAndClearLater(ctx context.Context, clip Clipboard, text string, after time.Duration) (<-chan struct{}, error) {
	if err := clip.WriteAll(text); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		t := time.NewTimer(after)
		defer t.Stop()

		select {
		case <-t.C:
			_ = ClearIfUnchanged(clip, text)
		case <-ctx.Done():
			_ = ClearIfUnchanged(clip, text)
		}
	}()

	return done, nil
}
