// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pass-vault command line and terminal UI.
//
// All Msg* constants are human-readable message strings printed to the user
// to describe the outcome of an operation. Keeping them in one place ensures
// consistent wording between the one-shot commands, the shell and the
// browser.
package app

const (
	// MsgInvalidMasterPassword is the single message shown for every unlock
	// failure: wrong password, tampered or corrupt data, unsupported version.
	MsgInvalidMasterPassword = "invalid master password"

	// MsgVaultNotFound is shown when a command needs a vault and none has
	// been created yet.
	MsgVaultNotFound = "no vault found, run `vault init` first"

	// MsgVaultAlreadyExists is shown by init when a vault is present.
	MsgVaultAlreadyExists = "a vault already exists, use `vault destroy` to start over"

	// MsgPasswordsDoNotMatch is shown when a password and its confirmation
	// differ.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgEmptyPassword is shown when an empty master password is entered.
	MsgEmptyPassword = "master password must not be empty"

	// MsgWeakPassword prefixes the advisory strength warning for new master
	// passwords.
	MsgWeakPassword = "warning: weak master password"

	// MsgInvalidImport is shown when an import file is missing a slot, has
	// an unsupported version or holds undecodable data.
	MsgInvalidImport = "invalid import data"

	// MsgInvalidCredential is shown when an entry fails validation, e.g. an
	// empty name or an unknown category.
	MsgInvalidCredential = "invalid credential"

	// MsgCredentialNotFound is shown when no entry matches the given name or
	// ID.
	MsgCredentialNotFound = "credential not found"

	// MsgAmbiguousCredential is shown when a name matches several entries.
	MsgAmbiguousCredential = "several credentials match, use the ID instead"

	// MsgSessionLocked is shown once the shell or browser has been locked
	// after inactivity.
	MsgSessionLocked = "session locked"

	// MsgClipboardUnavailable is shown when no system clipboard utility is
	// installed.
	MsgClipboardUnavailable = "clipboard is not available on this system"

	// MsgAborted is shown when the user declines a confirmation.
	MsgAborted = "aborted"

	// MsgInternalError is shown for unexpected failures. Details go to the
	// log only.
	MsgInternalError = "internal error, see the log for details"
)
