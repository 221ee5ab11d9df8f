// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

type command struct {
	usage   string
	summary string
	run     func(ctx context.Context, args []string) error
}

// runEnv describes where a session command runs. Inside the shell copies
// do not block and their clipboard clears are collected in pending.
type runEnv struct {
	interactive bool
	pending     []<-chan struct{}
}

type sessionRunner func(ctx context.Context, s *service.Session, args []string, env *runEnv) error

type sessionCommand struct {
	usage   string
	summary string
	run     sessionRunner
}

func (a *App) commands() map[string]command {
	cmds := map[string]command{
		"init":       {usage: "init", summary: "create a new empty vault", run: a.initVault},
		"passwd":     {usage: "passwd", summary: "change the master password", run: a.changePassword},
		"export":     {usage: "export [-o file] [-force]", summary: "write the encrypted vault as JSON", run: a.exportVault},
		"import":     {usage: "import [-y] <file|->", summary: "replace the vault with an export", run: a.importVault},
		"destroy":    {usage: "destroy [-y]", summary: "permanently delete the vault", run: a.destroyVault},
		"shell":      {usage: "shell", summary: "unlock once and run several commands", run: a.runShell},
		"browse":     {usage: "browse", summary: "browse credentials interactively", run: a.runBrowse},
		"version":    {usage: "version", summary: "print build information", run: a.printVersion},
		"categories": {usage: "categories", summary: "list the allowed categories", run: a.listCategories},
		"help":       {usage: "help", summary: "show this help", run: a.help},
	}

	for name, sc := range a.sessionCommands() {
		cmds[name] = command{usage: sc.usage, summary: sc.summary, run: a.withSession(sc.run)}
	}

	return cmds
}

// sessionCommands are the commands that need an unlocked vault. They run
// one-shot from the command line or repeatedly inside the shell.
func (a *App) sessionCommands() map[string]sessionCommand {
	return map[string]sessionCommand{
		"list": {usage: "list [-fav] [-category c] [filter]", summary: "list credentials", run: a.listCredentials},
		"show": {usage: "show [-reveal] <name|id>", summary: "show one credential", run: a.showCredential},
		"add":  {usage: "add [field flags] [-fav] [name]", summary: "add a credential", run: a.addCredential},
		"edit": {usage: "edit [field flags] [-password] <name|id>", summary: "edit a credential", run: a.editCredential},
		"rm":   {usage: "rm [-y] <name|id>", summary: "remove a credential", run: a.removeCredential},
		"fav":  {usage: "fav [-off] <name|id>", summary: "mark or unmark a favorite", run: a.favoriteCredential},
		"copy": {usage: "copy [-username] <name|id>", summary: "copy a password to the clipboard", run: a.copyCredential},
	}
}

// parseArgs parses flags placed anywhere among args and returns the
// positional arguments in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	fs.SetOutput(io.Discard)

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, usageErrorf(fmt.Sprintf("%s: %v", fs.Name(), err))
		}

		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func parseQuery(fs *flag.FlagSet, args []string) (string, error) {
	positional, err := parseArgs(fs, args)
	if err != nil {
		return "", err
	}

	query := strings.TrimSpace(strings.Join(positional, " "))
	if query == "" {
		return "", usageErrorf(fmt.Sprintf("%s: name or id required", fs.Name()))
	}

	return query, nil
}

func parseNone(name string, args []string) error {
	return parseFlagsOnly(flag.NewFlagSet(name, flag.ContinueOnError), args)
}

func parseFlagsOnly(fs *flag.FlagSet, args []string) error {
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return usageErrorf(fmt.Sprintf("%s: unexpected argument %q", fs.Name(), positional[0]))
	}
	return nil
}

func parseCategory(value string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(value)))
	if c == "" {
		return models.CategoryOther, nil
	}
	if !c.IsValid() {
		names := make([]string, 0, len(models.Categories))
		for _, known := range models.Categories {
			names = append(names, string(known))
		}
		return "", usageErrorf(fmt.Sprintf("unknown category %q, expected one of: %s", value, strings.Join(names, ", ")))
	}
	return c, nil
}

// ── vault commands ──────────────────────────────────────────────────────────

func (a *App) initVault(ctx context.Context, args []string) error {
	if err := parseNone("init", args); err != nil {
		return err
	}

	exists, err := a.services.VaultService.VaultExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return service.ErrVaultAlreadyExists
	}

	password, err := a.askNewMasterPassword("New master password: ")
	if err != nil {
		return err
	}

	if err = a.services.VaultService.CreateVault(ctx, password); err != nil {
		return err
	}

	a.printErr(tui.Success("vault created"))
	return nil
}

func (a *App) changePassword(ctx context.Context, args []string) error {
	if err := parseNone("passwd", args); err != nil {
		return err
	}

	exists, err := a.services.VaultService.VaultExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return service.ErrVaultNotFound
	}

	oldPassword, err := a.prompt.Password("Current master password: ")
	if err != nil {
		return err
	}
	newPassword, err := a.askNewMasterPassword("New master password: ")
	if err != nil {
		return err
	}

	if err = a.services.VaultService.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}

	a.printErr(tui.Success("master password changed"))
	return nil
}

func (a *App) exportVault(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.String("o", "", "destination file, stdout when empty")
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := parseFlagsOnly(fs, args); err != nil {
		return err
	}

	record, err := a.services.VaultService.ExportVault(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling export record: %w", err)
	}
	data = append(data, '\n')

	if *output == "" || *output == "-" {
		_, err = a.out.Write(data)
		return err
	}

	if !*force {
		if _, statErr := os.Stat(*output); statErr == nil {
			return usageErrorf(fmt.Sprintf("export: %s already exists, use -force to overwrite", *output))
		}
	}

	if err = writePrivateFile(*output, data); err != nil {
		return fmt.Errorf("error writing export file: %w", err)
	}

	a.printErr(tui.Success("vault exported to " + *output))
	return nil
}

// writePrivateFile replaces path with data through a temporary file in the
// same directory, so the result is owner-only even when path existed with
// wider permissions.
func writePrivateFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func (a *App) importVault(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	yes := fs.Bool("y", false, "replace an existing vault without asking")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return usageErrorf("import: exactly one file required")
	}
	source := positional[0]

	var data []byte
	if source == "-" {
		if !*yes {
			return usageErrorf("import: reading from stdin requires -y")
		}
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return usageErrorf(fmt.Sprintf("import: %v", err))
	}

	record, err := decodeExportRecord(data)
	if err != nil {
		return err
	}

	exists, err := a.services.VaultService.VaultExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		if err = a.confirm("Replace the existing vault?", *yes); err != nil {
			return err
		}
	}

	if err = a.services.VaultService.ImportVault(ctx, record); err != nil {
		return err
	}

	a.printErr(tui.Success("vault imported"))
	return nil
}

func decodeExportRecord(data []byte) (models.ExportRecord, error) {
	var record models.ExportRecord

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&record); err != nil {
		return models.ExportRecord{}, fmt.Errorf("%w: %w", service.ErrInvalidImport, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.ExportRecord{}, fmt.Errorf("%w: trailing data after record", service.ErrInvalidImport)
	}

	return record, nil
}

func (a *App) destroyVault(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("destroy", flag.ContinueOnError)
	yes := fs.Bool("y", false, "do not ask for confirmation")
	if err := parseFlagsOnly(fs, args); err != nil {
		return err
	}

	exists, err := a.services.VaultService.VaultExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return service.ErrVaultNotFound
	}

	password, err := a.prompt.Password("Master password: ")
	if err != nil {
		return err
	}
	if _, err = a.services.VaultService.UnlockVault(ctx, password); err != nil {
		return err
	}

	if err = a.confirm("Permanently delete the vault? This cannot be undone.", *yes); err != nil {
		return err
	}

	if err = a.services.VaultService.DeleteVault(ctx); err != nil {
		return err
	}

	a.printErr(tui.Success("vault deleted"))
	return nil
}

func (a *App) printVersion(_ context.Context, args []string) error {
	if err := parseNone("version", args); err != nil {
		return err
	}

	a.print(tui.RenderBuildInfo(a.buildInfo))
	return nil
}

func (a *App) help(_ context.Context, _ []string) error {
	a.printUsage()
	return nil
}

// ── session commands ────────────────────────────────────────────────────────

func (a *App) listCredentials(_ context.Context, s *service.Session, args []string, _ *runEnv) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	favOnly := fs.Bool("fav", false, "only favorites")
	category := fs.String("category", "", "only this category")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	var want models.Category
	if *category != "" {
		if want, err = parseCategory(*category); err != nil {
			return err
		}
	}
	query := strings.Join(positional, " ")

	credentials, err := s.Credentials()
	if err != nil {
		return err
	}

	shown := make([]models.Credential, 0, len(credentials))
	for _, c := range credentials {
		if *favOnly && !c.Favorite {
			continue
		}
		if want != "" && c.Category != want {
			continue
		}
		if query != "" && !tui.MatchCredential(c, query) {
			continue
		}
		shown = append(shown, c)
	}

	a.print(tui.RenderList(shown))
	return nil
}

func (a *App) showCredential(_ context.Context, s *service.Session, args []string, _ *runEnv) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	reveal := fs.Bool("reveal", false, "print the password")
	query, err := parseQuery(fs, args)
	if err != nil {
		return err
	}

	c, err := s.Find(query)
	if err != nil {
		return err
	}

	a.print(tui.RenderDetail(c, *reveal))
	return nil
}

func (a *App) addCredential(ctx context.Context, s *service.Session, args []string, _ *runEnv) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	username := fs.String("username", "", "login name")
	url := fs.String("url", "", "resource address")
	category := fs.String("category", "", "credential category")
	notes := fs.String("notes", "", "free-form notes")
	favorite := fs.Bool("fav", false, "mark as favorite")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}

	if *name == "" {
		*name = strings.Join(positional, " ")
	}
	if strings.TrimSpace(*name) == "" {
		if *name, err = a.prompt.Line("Name: "); err != nil {
			return err
		}
	}

	cat, err := parseCategory(*category)
	if err != nil {
		return err
	}

	password, err := a.prompt.NewPassword("Password (empty for none): ", "Confirm password: ")
	if err != nil {
		return err
	}

	added, err := s.Add(ctx, models.Credential{
		Name:     strings.TrimSpace(*name),
		Username: *username,
		Password: password,
		URL:      *url,
		Notes:    *notes,
		Category: cat,
		Favorite: *favorite,
	})
	if err != nil {
		return err
	}

	if warning := tui.StrengthWarning(password, added.Name, added.Username); password != "" && warning != "" {
		a.printErr(tui.Warning("weak password: " + warning))
	}
	a.printErr(tui.Success(fmt.Sprintf("added %q (%s)", added.Name, added.ID)))
	return nil
}

func (a *App) editCredential(ctx context.Context, s *service.Session, args []string, _ *runEnv) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	username := fs.String("username", "", "login name")
	url := fs.String("url", "", "resource address")
	category := fs.String("category", "", "credential category")
	notes := fs.String("notes", "", "free-form notes")
	changePassword := fs.Bool("password", false, "prompt for a new password")
	query, err := parseQuery(fs, args)
	if err != nil {
		return err
	}

	c, err := s.Find(query)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if len(set) == 0 {
		if err = a.editInteractively(&c); err != nil {
			return err
		}
	} else {
		if set["name"] {
			c.Name = strings.TrimSpace(*name)
		}
		if set["username"] {
			c.Username = *username
		}
		if set["url"] {
			c.URL = *url
		}
		if set["notes"] {
			c.Notes = *notes
		}
		if set["category"] {
			if c.Category, err = parseCategory(*category); err != nil {
				return err
			}
		}
		if *changePassword {
			if c.Password, err = a.prompt.NewPassword("New password (empty for none): ", "Confirm password: "); err != nil {
				return err
			}
		}
	}

	updated, err := s.Update(ctx, c)
	if err != nil {
		return err
	}

	a.printErr(tui.Success(fmt.Sprintf("updated %q", updated.Name)))
	return nil
}

func (a *App) editInteractively(c *models.Credential) error {
	fields := []struct {
		label string
		value *string
	}{
		{"Name: ", &c.Name},
		{"Username: ", &c.Username},
		{"URL: ", &c.URL},
		{"Notes: ", &c.Notes},
	}

	for _, f := range fields {
		v, err := a.prompt.LineOrKeep(f.label, *f.value)
		if err != nil {
			return err
		}
		*f.value = v
	}

	raw, err := a.prompt.LineOrKeep("Category: ", string(c.Category))
	if err != nil {
		return err
	}
	if c.Category, err = parseCategory(raw); err != nil {
		return err
	}

	change, err := a.prompt.Confirm("Change password?")
	if err != nil {
		return err
	}
	if change {
		if c.Password, err = a.prompt.NewPassword("New password (empty for none): ", "Confirm password: "); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) removeCredential(ctx context.Context, s *service.Session, args []string, _ *runEnv) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	yes := fs.Bool("y", false, "do not ask for confirmation")
	query, err := parseQuery(fs, args)
	if err != nil {
		return err
	}

	c, err := s.Find(query)
	if err != nil {
		return err
	}

	if err = a.confirm(fmt.Sprintf("Remove %q?", c.Name), *yes); err != nil {
		return err
	}

	if err = s.Remove(ctx, c.ID); err != nil {
		return err
	}

	a.printErr(tui.Success(fmt.Sprintf("removed %q", c.Name)))
	return nil
}

func (a *App) favoriteCredential(ctx context.Context, s *service.Session, args []string, _ *runEnv) error {
	fs := flag.NewFlagSet("fav", flag.ContinueOnError)
	off := fs.Bool("off", false, "remove from favorites")
	query, err := parseQuery(fs, args)
	if err != nil {
		return err
	}

	c, err := s.Find(query)
	if err != nil {
		return err
	}

	if err = s.SetFavorite(ctx, c.ID, !*off); err != nil {
		return err
	}

	if *off {
		a.printErr(tui.Success(fmt.Sprintf("%q removed from favorites", c.Name)))
	} else {
		a.printErr(tui.Success(fmt.Sprintf("%q added to favorites", c.Name)))
	}
	return nil
}

func (a *App) copyCredential(ctx context.Context, s *service.Session, args []string, env *runEnv) error {
	fs := flag.NewFlagSet("copy", flag.ContinueOnError)
	copyUsername := fs.Bool("username", false, "copy the username instead of the password")
	query, err := parseQuery(fs, args)
	if err != nil {
		return err
	}

	c, err := s.Find(query)
	if err != nil {
		return err
	}

	field, text := "password", c.Password
	if *copyUsername {
		field, text = "username", c.Username
	}
	if text == "" {
		return usageErrorf(fmt.Sprintf("%q has no %s", c.Name, field))
	}

	clearAfter := a.cfg.Clipboard.ClearAfter

	if env.interactive {
		done, err := tui.CopyAndClearLater(ctx, a.clip, text, clearAfter)
		if err != nil {
			return err
		}
		env.pending = append(env.pending, done)
		a.printErr(tui.Success(fmt.Sprintf("%s of %q copied, clearing in %s", field, c.Name, clearAfter)))
		return nil
	}

	a.printErr(tui.Success(fmt.Sprintf("%s of %q copied, clearing in %s", field, c.Name, clearAfter)))
	err = tui.CopyAndWait(ctx, a.clip, text, clearAfter)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.printErr(tui.Help("clipboard cleared"))
	return nil
}

func (a *App) listCategories(_ context.Context, args []string) error {
	if err := parseNone("categories", args); err != nil {
		return err
	}

	a.print(tui.RenderCategories())
	return nil
}
