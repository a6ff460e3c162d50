// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/ManuGH/sitecfg/internal/config"
	"github.com/spf13/cobra"
)

func newDumpCmd(stdout io.Writer) *cobra.Command {
	var file, manifest, format, out string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective configuration with all defaults applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return usageError("--file is required")
			}
			f := config.Format(format)
			if f != config.FormatYAML && f != config.FormatJSON {
				return usageError("--format must be yaml or json, got %q", format)
			}

			cfg, err := newLoader(file, manifest).Load()
			if err != nil {
				return invalidError(err)
			}

			if out != "" {
				if err := config.NewManager(out).Save(cfg); err != nil {
					return invalidError(err)
				}
				fmt.Fprintf(stdout, "wrote %s\n", out)
				return nil
			}
			if err := config.Encode(stdout, cfg, f); err != nil {
				return invalidError(err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to site configuration file")
	cmd.Flags().StringVar(&manifest, "package", "", manifestUsage)
	cmd.Flags().StringVar(&format, "format", string(config.FormatYAML), "output format (yaml or json)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write atomically to this file instead of stdout (format from extension)")
	return cmd
}
