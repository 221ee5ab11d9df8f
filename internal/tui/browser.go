// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/models"
)

const lockCheckInterval = time.Second

// Browsable is what the browser needs from an unlocked session.
type Browsable interface {
	Credentials() ([]models.Credential, error)
	SetFavorite(ctx context.Context, id string, favorite bool) error
	Locked() bool
}

type browserMode int

const (
	modeList browserMode = iota
	modeFilter
	modeDetail
)

// BrowserModel is the interactive credential list. It quits on its own once
// the session gets locked.
type BrowserModel struct {
	ctx        context.Context
	session    Browsable
	clip       Clipboard
	clearAfter time.Duration

	all     []models.Credential
	visible []models.Credential
	idx     int
	mode    browserMode
	reveal  bool
	filter  textinput.Model

	copied string
	status string
	err    error
	locked bool
}

func NewBrowserModel(ctx context.Context, session Browsable, clip Clipboard, clearAfter time.Duration) BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "name, username, url or category"
	filter.Prompt = "/ "

	m := BrowserModel{
		ctx:        ctx,
		session:    session,
		clip:       clip,
		clearAfter: clearAfter,
		filter:     filter,
	}
	m.reload()

	return m
}

// Locked reports whether the browser exited because the session locked.
func (m BrowserModel) Locked() bool {
	return m.locked
}

func (m BrowserModel) Init() tea.Cmd {
	return lockCheck()
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lockCheckMsg:
		if m.session.Locked() {
			return m.lock()
		}
		return m, lockCheck()

	case clipboardClearMsg:
		if msg.text == m.copied {
			if err := ClearIfUnchanged(m.clip, msg.text); err == nil {
				m.status = "clipboard cleared"
			}
			m.copied = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}

		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m BrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.mode = modeDetail
			m.reveal = false
		}
	case key.Matches(msg, keys.filter):
		m.mode = modeFilter
		return m, m.filter.Focus()
	case key.Matches(msg, keys.esc):
		m.filter.Reset()
		m.applyFilter()
	case key.Matches(msg, keys.copy):
		return m.copyField(func(c models.Credential) string { return c.Password }, "password")
	case key.Matches(msg, keys.copyUser):
		return m.copyField(func(c models.Credential) string { return c.Username }, "username")
	case key.Matches(msg, keys.favorite):
		return m.toggleFavorite()
	}

	return m, nil
}

func (m BrowserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = modeList
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.mode = modeList
		m.filter.Blur()
		m.filter.Reset()
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()

	return m, cmd
}

func (m BrowserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		m.reveal = false
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.copy):
		return m.copyField(func(c models.Credential) string { return c.Password }, "password")
	case key.Matches(msg, keys.copyUser):
		return m.copyField(func(c models.Credential) string { return c.Username }, "username")
	case key.Matches(msg, keys.favorite):
		return m.toggleFavorite()
	}

	return m, nil
}

func (m BrowserModel) copyField(field func(models.Credential) string, name string) (tea.Model, tea.Cmd) {
	c, ok := m.current()
	if !ok {
		return m, nil
	}

	text := field(c)
	if text == "" {
		m.status = "nothing to copy"
		return m, nil
	}

	if err := m.clip.WriteAll(text); err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.copied = text
	m.status = fmt.Sprintf("%s copied, clearing in %s", name, m.clearAfter)

	return m, tea.Tick(m.clearAfter, func(time.Time) tea.Msg {
		return clipboardClearMsg{text: text}
	})
}

func (m BrowserModel) toggleFavorite() (tea.Model, tea.Cmd) {
	c, ok := m.current()
	if !ok {
		return m, nil
	}

	if err := m.session.SetFavorite(m.ctx, c.ID, !c.Favorite); err != nil {
		if m.session.Locked() {
			return m.lock()
		}
		m.err = err
		return m, nil
	}

	m.err = nil
	m.reload()
	if c.Favorite {
		m.status = "removed from favorites"
	} else {
		m.status = "added to favorites"
	}

	return m, nil
}

func (m BrowserModel) lock() (tea.Model, tea.Cmd) {
	m.locked = true
	m.all, m.visible = nil, nil
	return m.quit()
}

func (m BrowserModel) quit() (tea.Model, tea.Cmd) {
	if m.copied != "" {
		_ = ClearIfUnchanged(m.clip, m.copied)
		m.copied = ""
	}
	return m, tea.Quit
}

func (m *BrowserModel) reload() {
	creds, err := m.session.Credentials()
	if err != nil {
		m.err = err
		return
	}
	m.all = creds
	m.applyFilter()
}

func (m *BrowserModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	visible := make([]models.Credential, 0, len(m.all))
	for _, c := range m.all {
		if query == "" || MatchCredential(c, query) {
			visible = append(visible, c)
		}
	}
	m.visible = visible

	if m.idx >= len(m.visible) {
		m.idx = max(len(m.visible)-1, 0)
	}
}

// MatchCredential reports whether query occurs, ignoring case, in the name,
// username, URL or category of c.
func MatchCredential(c models.Credential, query string) bool {
	query = strings.ToLower(query)
	for _, field := range []string{c.Name, c.Username, c.URL, string(c.Category)} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m BrowserModel) current() (models.Credential, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.Credential{}, false
	}
	return m.visible[m.idx], true
}

func (m BrowserModel) View() string {
	if m.locked {
		return appStyle.Render(app.MsgSessionLocked) + "\n"
	}

	var body string
	if m.mode == modeDetail {
		c, _ := m.current()
		body = RenderDetail(c, m.reveal) + m.footer("esc back  r reveal  c copy password  u copy username  f favorite  q quit")
	} else {
		body = m.listView()
	}

	return appStyle.Render(body)
}

func (m BrowserModel) listView() string {
	var b strings.Builder

	if m.mode == modeFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString("no matching credentials\n")
	}
	for i, c := range m.visible {
		row := listRow(c)
		if i == m.idx {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	return renderPage("Vault", b.String(), "") +
		m.footer("↑/↓ move  enter open  / filter  c copy password  u copy username  f favorite  q quit")
}

func (m BrowserModel) footer(hotKeys string) string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(Error(m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(Success(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}

func lockCheck() tea.Cmd {
	return tea.Tick(lockCheckInterval, func(time.Time) tea.Msg {
		return lockCheckMsg{}
	})
}

// RunBrowser runs model full screen until the user quits or the session
// locks. It reports whether the session was locked.
func RunBrowser(ctx context.Context, model BrowserModel, in io.Reader, out io.Writer) (bool, error) {
	final, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return false, fmt.Errorf("run browser: %w", err)
	}

	result, ok := final.(BrowserModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	return result.Locked(), nil
}
