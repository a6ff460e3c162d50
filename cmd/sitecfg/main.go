// SPDX-License-Identifier: MIT

// sitecfg resolves and validates documentation-site configuration files.
//
// Usage:
//
//	sitecfg validate -f site.yaml [--package package.json]
//	sitecfg dump -f site.yaml [--format yaml|json] [-o out.yaml]
//	sitecfg watch -f site.yaml
//	sitecfg version
//
// Exit codes:
//   - 0: Success
//   - 1: Configuration is invalid (parse or validation error)
//   - 2: Usage error (missing required flag, bad flag value)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

// exitError carries the process exit code for a failed command.
// reported is set when the command already printed its own diagnostics.
type exitError struct {
	code     int
	err      error
	reported bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

func invalidError(err error) error {
	return &exitError{code: exitInvalid, err: err}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if !ee.reported {
				fmt.Fprintf(stderr, "Error: %v\n", ee.err)
			}
			return ee.code
		}
		// Anything else comes from cobra's own argument and flag parsing.
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	return exitOK
}
