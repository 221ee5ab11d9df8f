// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

// Prompter reads answers from the user. On a terminal passwords are read
// without echo; on any other input, such as a pipe, every answer is one line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter reads from in, switching to no-echo mode for passwords when
// in is a terminal. Prompts go to out.
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	fd := int(in.Fd())
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
		tty: term.IsTerminal(fd),
	}
}

// NewLinePrompter reads every answer, passwords included, as a line of in.
func NewLinePrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
}

// Password asks for a secret without echoing it.
func (p *Prompter) Password(label string) (string, error) {
	fmt.Fprint(p.out, label)

	if !p.tty {
		return p.readLine()
	}

	raw, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	defer memguard.WipeBytes(raw)

	return string(raw), nil
}

// NewPassword asks for a secret twice and fails with [ErrPasswordMismatch]
// when the answers differ.
func (p *Prompter) NewPassword(label, confirmLabel string) (string, error) {
	first, err := p.Password(label)
	if err != nil {
		return "", err
	}

	second, err := p.Password(confirmLabel)
	if err != nil {
		return "", err
	}

	if first != second {
		return "", ErrPasswordMismatch
	}

	return first, nil
}

// Line asks for one line of text, trimmed of surrounding spaces.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.readLine()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// LineOrKeep asks for a replacement of current. An empty answer keeps it.
func (p *Prompter) LineOrKeep(label, current string) (string, error) {
	hint := label
	if current != "" {
		hint = fmt.Sprintf("%s[%s] ", label, current)
	}

	line, err := p.Line(hint)
	if err != nil {
		return "", err
	}
	if line == "" {
		return current, nil
	}

	return line, nil
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Line(question + " [y/N]: ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
