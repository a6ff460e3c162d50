// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/ManuGH/sitecfg/internal/config"
	xglog "github.com/ManuGH/sitecfg/internal/log"
	"github.com/ManuGH/sitecfg/internal/version"
	"github.com/spf13/cobra"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "sitecfg",
		Short:         "Resolve and validate documentation-site configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if logLevel != "" {
				if _, err := xglog.ParseLevel(logLevel); err != nil {
					return usageError("--log-level: %v", err)
				}
			}
			// Empty level falls back to LOG_LEVEL.
			xglog.Reconfigure(xglog.Config{
				Level:   logLevel,
				Output:  stderr,
				Service: "sitecfg",
				Version: version.Version,
			})
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error); defaults to $LOG_LEVEL or info")

	root.AddCommand(
		newValidateCmd(stdout, stderr),
		newDumpCmd(stdout),
		newWatchCmd(stdout),
		newVersionCmd(stdout),
	)
	return root
}

// newLoader builds the loader shared by every command. manifest may be empty.
func newLoader(file, manifest string) *config.Loader {
	loader := config.NewLoader(file, version.Version)
	if manifest != "" {
		loader = loader.WithManifest(manifest)
	}
	return loader
}

const manifestUsage = "package manifest supplying the description when the file has none"
