// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/ManuGH/sitecfg/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(stdout, "sitecfg %s\n", version.String())
			return nil
		},
	}
}
