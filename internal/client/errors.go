// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
)

var (
	ErrAborted        = errors.New("aborted by user")
	ErrUnknownCommand = errors.New("unknown command")
)

// UsageError is a mistake in the command line itself. Its text is shown to
// the user as is.
type UsageError struct {
	msg string
}

func (e UsageError) Error() string { return e.msg }

func usageErrorf(msg string) error {
	return UsageError{msg: msg}
}

// IsUsageError reports whether err came from a malformed command line.
func IsUsageError(err error) bool {
	var uerr UsageError
	return errors.As(err, &uerr) || errors.Is(err, ErrUnknownCommand)
}

// UserMessage turns err into the text shown to the user. Unlock failures
// all read the same; anything unexpected becomes a generic message and
// its details stay in the log.
func UserMessage(err error) string {
	var uerr UsageError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &uerr):
		return uerr.msg
	case errors.Is(err, ErrUnknownCommand):
		return err.Error()
	case errors.Is(err, service.ErrCannotUnlock):
		return app.MsgInvalidMasterPassword
	case errors.Is(err, service.ErrVaultNotFound):
		return app.MsgVaultNotFound
	case errors.Is(err, service.ErrVaultAlreadyExists):
		return app.MsgVaultAlreadyExists
	case errors.Is(err, service.ErrEmptyPassword):
		return app.MsgEmptyPassword
	case errors.Is(err, tui.ErrPasswordMismatch):
		return app.MsgPasswordsDoNotMatch
	case errors.Is(err, service.ErrInvalidImport):
		return app.MsgInvalidImport
	case errors.Is(err, service.ErrInvalidCollection):
		return app.MsgInvalidCredential
	case errors.Is(err, service.ErrCredentialNotFound):
		return app.MsgCredentialNotFound
	case errors.Is(err, service.ErrAmbiguousCredential):
		return app.MsgAmbiguousCredential
	case errors.Is(err, service.ErrSessionLocked):
		return app.MsgSessionLocked
	case errors.Is(err, tui.ErrClipboardUnavailable):
		return app.MsgClipboardUnavailable
	case errors.Is(err, ErrAborted):
		return app.MsgAborted
	default:
		return app.MsgInternalError
	}
}
