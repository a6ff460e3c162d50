// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/ManuGH/sitecfg/internal/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd(stdout, stderr io.Writer) *cobra.Command {
	var file, manifest string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a site configuration file",
		Long:  "Parse the file strictly, apply environment overrides and defaults, and report every validation failure.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return usageError("--file is required")
			}

			cfg, err := newLoader(file, manifest).Load()
			if err != nil {
				fmt.Fprintf(stderr, "Configuration error in %s:\n", file)
				writeErrors(stderr, err)
				return &exitError{code: exitInvalid, err: err, reported: true}
			}

			fmt.Fprintf(stdout, "%s is valid (%d nav items, %d sidebar sections, %d plugins)\n",
				file, len(cfg.Theme.Nav), len(cfg.Theme.Sidebar), len(cfg.Plugins))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to site configuration file (.yaml, .yml, .json, .toml)")
	cmd.Flags().StringVar(&manifest, "package", "", manifestUsage)
	return cmd
}

// writeErrors prints one line per validation failure, or the error itself
// when it is not a validation aggregate.
func writeErrors(w io.Writer, err error) {
	var verr validate.ValidationError
	if errors.As(err, &verr) {
		for _, e := range verr.Errors() {
			fmt.Fprintf(w, "  - %s: %s\n", e.Field, e.Message)
		}
		return
	}
	fmt.Fprintf(w, "  %v\n", err)
}
