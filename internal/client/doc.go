// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the go-pass-vault command line.
//
// Every subcommand is a short-lived unit: it prompts for the master password,
// unlocks a [service.Session], performs one change and exits. The shell and
// browse subcommands keep the session open instead and hand it to the
// auto-lock job, which locks it after the configured idle time.
package client
