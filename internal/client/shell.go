// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

const shellPrompt = "vault> "

// runShell unlocks the vault once and reads commands until exit, EOF or
// the session locks. Pending clipboard clears finish before it returns.
func (a *App) runShell(ctx context.Context, args []string) error {
	if err := parseNone("shell", args); err != nil {
		return err
	}

	s, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Lock()

	shellCtx, cancel := context.WithCancel(ctx)
	env := &runEnv{interactive: true}
	defer func() {
		cancel()
		for _, done := range env.pending {
			<-done
		}
	}()

	a.services.AutoLockJob.Start(shellCtx, s, a.cfg.Session.AutoLock)
	defer a.services.AutoLockJob.Stop()

	a.printErr(tui.Help("vault unlocked, type help for commands"))

	cmds := a.sessionCommands()
	cmds["browse"] = sessionCommand{usage: "browse", summary: "browse credentials interactively", run: a.browse}

	for {
		if s.Locked() {
			a.printErr(tui.Warning(app.MsgSessionLocked))
			return nil
		}

		line, err := a.prompt.Line(shellPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		// the auto-lock may have fired while waiting for input
		if s.Locked() {
			a.printErr(tui.Warning(app.MsgSessionLocked))
			return nil
		}

		fields, err := splitArgs(line)
		if err != nil {
			a.printErr(tui.Error(UserMessage(err)))
			continue
		}
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return nil
		case "lock":
			s.Lock()
			a.printErr(tui.Success("vault locked"))
			return nil
		case "help":
			a.printShellHelp(cmds)
			continue
		case "categories":
			a.print(tui.RenderCategories())
			continue
		}

		cmd, ok := cmds[fields[0]]
		if !ok {
			a.printErr(tui.Error(fmt.Sprintf("%s: %s", ErrUnknownCommand, fields[0])))
			continue
		}

		err = cmd.run(shellCtx, s, fields[1:], env)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrSessionLocked):
			a.printErr(tui.Warning(app.MsgSessionLocked))
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			a.reportError(fields[0], err)
		}
	}
}

func (a *App) printShellHelp(cmds map[string]sessionCommand) {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-34s %s\n", cmds[name].usage, cmds[name].summary)
	}
	fmt.Fprintf(&b, "  %-34s %s\n", "categories", "list the allowed categories")
	fmt.Fprintf(&b, "  %-34s %s", "lock | exit", "lock the vault and leave")

	a.printErr(tui.Help(b.String()))
}

// reportError prints err for the user and logs the details of anything
// unexpected.
func (a *App) reportError(command string, err error) {
	msg := UserMessage(err)
	if msg == app.MsgInternalError {
		a.logger.Error().Err(err).Str("command", command).Msg("command failed")
	}
	a.printErr(tui.Error(msg))
}

// runBrowse unlocks the vault and opens the interactive browser.
func (a *App) runBrowse(ctx context.Context, args []string) error {
	if err := parseNone("browse", args); err != nil {
		return err
	}

	s, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Lock()

	a.services.AutoLockJob.Start(ctx, s, a.cfg.Session.AutoLock)
	defer a.services.AutoLockJob.Stop()

	if err = a.browse(ctx, s, nil, &runEnv{interactive: true}); err != nil {
		return err
	}

	if s.Locked() {
		a.printErr(tui.Warning(app.MsgSessionLocked))
	}
	return nil
}

func (a *App) browse(ctx context.Context, s *service.Session, args []string, _ *runEnv) error {
	if err := parseNone("browse", args); err != nil {
		return err
	}

	model := tui.NewBrowserModel(ctx, s, a.clip, a.cfg.Clipboard.ClearAfter)
	if _, err := tui.RunBrowser(ctx, model, a.in, a.out); err != nil {
		return err
	}

	return nil
}

// splitArgs splits a shell line into words. Single or double quotes group
// words containing spaces.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, usageErrorf("unterminated quote")
	}
	if inToken {
		args = append(args, cur.String())
	}

	return args, nil
}
