// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the global configuration flags from args and returns
// the remaining positional arguments.
//
// Flags:
//
//	-driver storage driver (sqlite, file, bolt, memory)
//	-path storage path
//	-auto-lock idle time before an unlocked session locks (e.g. "5m")
//	-clipboard-clear time before a copied password is cleared (e.g. "30s")
//	-log-level log level
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var driver, path string
	var autoLock, clearAfter time.Duration
	var logLevel, logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&driver, "driver", "", "Storage driver (sqlite, file, bolt, memory)")
	fs.StringVar(&path, "path", "", "Storage path")
	fs.DurationVar(&autoLock, "auto-lock", 0, "Session idle timeout (e.g., 5m)")
	fs.DurationVar(&clearAfter, "clipboard-clear", 0, "Clipboard clear delay (e.g., 30s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Driver: driver,
			Path:   path,
		},
		Session:      Session{AutoLock: autoLock},
		Clipboard:    Clipboard{ClearAfter: clearAfter},
		Log:          Log{Level: logLevel, File: logFile},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
