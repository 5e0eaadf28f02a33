// Copyright © 2025 Launchdeck contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shell/logging.go
// Summary: Debug logging toggle for the shell engine.

package shell

import (
	"io"
	"log"
	"os"
)

// debugLog is discarded unless verbose logging is enabled.
var debugLog = log.New(io.Discard, "", log.LstdFlags)

// SetVerboseLogging enables or disables shell debug logging.
func SetVerboseLogging(enable bool) {
	if enable {
		debugLog = log.New(os.Stderr, "", log.LstdFlags)
	} else {
		debugLog = log.New(io.Discard, "", log.LstdFlags)
	}
}
