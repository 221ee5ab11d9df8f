// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

type App struct {
	services  *service.Services
	cfg       *config.StructuredConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	prompt *tui.Prompter
	clip   tui.Clipboard
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp wires the command line to the terminal: prompts and messages go to
// stderr so that stdout only carries command output.
func NewApp(services *service.Services, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
		prompt:    tui.NewPrompter(os.Stdin, os.Stderr),
		clip:      tui.NewSystemClipboard(),
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

// Run implements Client.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return usageErrorf("no command given")
	}

	name, rest := args[0], args[1:]
	cmd, ok := a.commands()[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	return cmd.run(ctx, rest)
}

// openSession asks for the master password and unlocks the vault.
func (a *App) openSession(ctx context.Context) (*service.Session, error) {
	exists, err := a.services.VaultService.VaultExists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, service.ErrVaultNotFound
	}

	password, err := a.prompt.Password("Master password: ")
	if err != nil {
		return nil, err
	}

	return service.OpenSession(ctx, a.services.VaultService, a.services.IDGenerator, password)
}

// withSession adapts a session command into a one-shot command. The session
// is locked before returning.
func (a *App) withSession(run sessionRunner) func(ctx context.Context, args []string) error {
	return func(ctx context.Context, args []string) error {
		s, err := a.openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Lock()

		return run(ctx, s, args, &runEnv{})
	}
}

// askNewMasterPassword reads a new master password twice and prints an
// advisory warning when it is weak.
func (a *App) askNewMasterPassword(label string) (string, error) {
	password, err := a.prompt.NewPassword(label, "Confirm master password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", service.ErrEmptyPassword
	}

	if warning := tui.StrengthWarning(password, a.cfg.Storage.Path); warning != "" {
		a.printErr(tui.Warning(fmt.Sprintf("%s (%s)", app.MsgWeakPassword, warning)))
	}

	return password, nil
}

func (a *App) confirm(question string, assumeYes bool) error {
	if assumeYes {
		return nil
	}

	ok, err := a.prompt.Confirm(question)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}

	return nil
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printErr(s string) {
	fmt.Fprintln(a.errOut, s)
}

func (a *App) printUsage() {
	var b strings.Builder

	b.WriteString("Usage: vault [config flags] <command> [flags] [args]\n\nCommands:\n")

	cmds := a.commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "  %-34s %s\n", cmds[name].usage, cmds[name].summary)
	}
	b.WriteString("\nField flags: -name, -username, -url, -category, -notes\n")
	b.WriteString("Config flags: -driver, -path, -auto-lock, -clipboard-clear, -log-level, -log-file, -config")

	a.printErr(tui.Help(b.String()))
}
