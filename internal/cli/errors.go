// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error display and process exit codes.
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/minis-tui/internal/api"
)

// Exit codes for scripting. Connection problems get their own code so
// a wrapper script can distinguish "backend down" from "bad input".
const (
	ExitOK         = 0
	ExitError      = 1
	ExitUsage      = 2
	ExitNotFound   = 3
	ExitConnection = 4
)

// GetExitCode maps an error to its process exit code.
func GetExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case api.IsNotFound(err):
		return ExitNotFound
	case api.IsConnectionError(err), api.IsTimeout(err):
		return ExitConnection
	default:
		return ExitError
	}
}

// DisplayError prints an error in the active output mode.
func DisplayError(command string, err error, jsonMode bool) {
	if jsonMode {
		NewJSONErrorResponse(command, err).Print()
		return
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
	if api.IsConnectionError(err) {
		fmt.Fprintln(os.Stderr, infoStyle.Render("Is the MINI S backend running? Check --server or MINIS_SERVER_URL."))
	}
}

// ExitWithError prints the error and exits with its code.
func ExitWithError(command string, err error, jsonMode bool) {
	DisplayError(command, err, jsonMode)
	os.Exit(GetExitCode(err))
}
