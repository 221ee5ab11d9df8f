// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

// fakeSession is an in-memory Browsable.
type fakeSession struct {
	creds     []models.Credential
	locked    bool
	favErr    error
	favCalled int
}

func (f *fakeSession) Credentials() ([]models.Credential, error) {
	if f.locked {
		return nil, errors.New("locked")
	}
	out := make([]models.Credential, len(f.creds))
	copy(out, f.creds)
	return out, nil
}

func (f *fakeSession) SetFavorite(_ context.Context, id string, favorite bool) error {
	f.favCalled++
	if f.favErr != nil {
		return f.favErr
	}
	for i := range f.creds {
		if f.creds[i].ID == id {
			f.creds[i].Favorite = favorite
		}
	}
	return nil
}

func (f *fakeSession) Locked() bool { return f.locked }

func runeKey(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func newTestBrowser(t *testing.T) (BrowserModel, *fakeSession, *fakeClipboard) {
	t.Helper()
	session := &fakeSession{creds: sampleCredentials()}
	clip := &fakeClipboard{}
	return NewBrowserModel(context.Background(), session, clip, 30*time.Second), session, clip
}

// press feeds msgs to m and returns the final model and the last command.
func press(t *testing.T, m BrowserModel, msgs ...tea.Msg) (BrowserModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(BrowserModel)
		require.True(t, ok)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestBrowser_InitialList(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	require.Len(t, m.visible, 3)
	assert.NotNil(t, m.Init())

	view := m.View()
	assert.Contains(t, view, "GitHub")
	assert.Contains(t, view, "Bank")
	assert.NotContains(t, view, "hunter2")
}

func TestBrowser_Navigation(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = press(t, m, runeKey("j"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.idx, "cursor stops at the last row")

	m, _ = press(t, m, runeKey("k"))
	assert.Equal(t, 1, m.idx)
}

func TestBrowser_DetailRevealAndBack(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeDetail, m.mode)
	assert.Contains(t, m.View(), "octocat")
	assert.NotContains(t, m.View(), "hunter2")

	m, _ = press(t, m, runeKey("r"))
	assert.Contains(t, m.View(), "hunter2")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
	assert.False(t, m.reveal)
}

func TestBrowser_Filter(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	m, _ = press(t, m, runeKey("/"))
	assert.Equal(t, modeFilter, m.mode)

	m, _ = press(t, m, runeKey("m"), runeKey("a"), runeKey("i"))
	require.Len(t, m.visible, 1)
	assert.Equal(t, "Mail", m.visible[0].Name)

	// typing q while filtering must not quit
	m, cmd := press(t, m, runeKey("q"))
	assert.False(t, isQuit(cmd))
	assert.Empty(t, m.visible)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.visible, 3)
}

func TestBrowser_FilterByCategory(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	m, _ = press(t, m, runeKey("/"), runeKey("f"), runeKey("i"), runeKey("n"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeList, m.mode)
	require.Len(t, m.visible, 1)
	assert.Equal(t, "Bank", m.visible[0].Name)
}

func TestBrowser_CopyPasswordAndClear(t *testing.T) {
	m, _, clip := newTestBrowser(t)

	m, cmd := press(t, m, runeKey("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, "hunter2", clip.Text())
	assert.Contains(t, m.status, "password copied")

	m, _ = press(t, m, clipboardClearMsg{text: "hunter2"})
	assert.Empty(t, clip.Text())
	assert.Equal(t, "clipboard cleared", m.status)
}

func TestBrowser_StaleClearKeepsNewerCopy(t *testing.T) {
	m, _, clip := newTestBrowser(t)

	m, _ = press(t, m, runeKey("c"), runeKey("u"))
	assert.Equal(t, "octocat", clip.Text())

	m, _ = press(t, m, clipboardClearMsg{text: "hunter2"})
	assert.Equal(t, "octocat", clip.Text())

	_, _ = press(t, m, clipboardClearMsg{text: "octocat"})
	assert.Empty(t, clip.Text())
}

func TestBrowser_CopyEmptyField(t *testing.T) {
	m, _, clip := newTestBrowser(t)

	m, _ = press(t, m, runeKey("j"), runeKey("u"))
	assert.Equal(t, "nothing to copy", m.status)
	assert.Zero(t, clip.writes)
}

func TestBrowser_CopyFails(t *testing.T) {
	m, _, clip := newTestBrowser(t)
	clip.failErr = ErrClipboardUnavailable

	m, _ = press(t, m, runeKey("c"))
	assert.ErrorIs(t, m.err, ErrClipboardUnavailable)
}

func TestBrowser_ToggleFavorite(t *testing.T) {
	m, session, _ := newTestBrowser(t)

	m, _ = press(t, m, runeKey("j"), runeKey("f"))
	assert.True(t, session.creds[1].Favorite)
	assert.True(t, m.visible[1].Favorite)
	assert.Equal(t, "added to favorites", m.status)

	session.favErr = errors.New("disk full")
	m, _ = press(t, m, runeKey("f"))
	assert.EqualError(t, m.err, "disk full")
}

func TestBrowser_QuitClearsClipboard(t *testing.T) {
	m, _, clip := newTestBrowser(t)

	m, _ = press(t, m, runeKey("c"))
	require.Equal(t, "hunter2", clip.Text())

	_, cmd := press(t, m, runeKey("q"))
	assert.True(t, isQuit(cmd))
	assert.Empty(t, clip.Text())
}

func TestBrowser_CtrlCQuitsFromFilter(t *testing.T) {
	m, _, _ := newTestBrowser(t)

	_, cmd := press(t, m, runeKey("/"), tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestBrowser_LockCheck(t *testing.T) {
	m, session, _ := newTestBrowser(t)

	m, cmd := press(t, m, lockCheckMsg{})
	assert.False(t, m.Locked())
	assert.NotNil(t, cmd)

	session.locked = true
	m, cmd = press(t, m, lockCheckMsg{})
	assert.True(t, m.Locked())
	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.visible)
	assert.Contains(t, m.View(), "session locked")
}

func TestBrowser_FavoriteAfterLock(t *testing.T) {
	m, session, _ := newTestBrowser(t)
	session.favErr = errors.New("session is locked")
	session.locked = true

	m, cmd := press(t, m, runeKey("f"))
	assert.True(t, m.Locked())
	assert.True(t, isQuit(cmd))
}
