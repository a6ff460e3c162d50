// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/ManuGH/sitecfg/internal/config"
	xglog "github.com/ManuGH/sitecfg/internal/log"
	"github.com/spf13/cobra"
)

func newWatchCmd(stdout io.Writer) *cobra.Command {
	var file, manifest string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a configuration file and report changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return usageError("--file is required")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watch(ctx, stdout, newLoader(file, manifest))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to site configuration file")
	cmd.Flags().StringVar(&manifest, "package", "", manifestUsage)
	return cmd
}

// watch blocks until ctx is done, printing one line per applied change.
func watch(ctx context.Context, stdout io.Writer, loader *config.Loader) error {
	logger := xglog.WithComponentFromContext(ctx, "watch")
	file := loader.Path()

	initial, err := loader.Load()
	if err != nil {
		return invalidError(err)
	}

	holder := config.NewHolder(initial, loader)
	updates := make(chan config.Update, 8)
	holder.RegisterListener(updates)

	if err := holder.StartWatcher(ctx); err != nil {
		return invalidError(err)
	}
	fmt.Fprintf(stdout, "watching %s (revision %s)\n", file, holder.Revision())

	for {
		select {
		case <-ctx.Done():
			holder.Wait()
			return nil
		case u := <-updates:
			logger.Info().
				Str(xglog.FieldEvent, "watch.changed").
				Str(xglog.FieldRevision, u.Revision).
				Strs(xglog.FieldChanged, u.Changes.ChangedFields).
				Msg("configuration changed")
			fmt.Fprintf(stdout, "revision %s: changed %v\n", u.Revision, u.Changes.ChangedFields)
		}
	}
}
