package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-app-info/internal/service"
	"github.com/MKhiriev/go-app-info/internal/store"
	"github.com/MKhiriev/go-app-info/models"
)

func newLaunchCommand(ctx context.Context, env *environment) *cobra.Command {
	var (
		ack    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Record this launch and report fresh installs and upgrades.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.cfg.ValidateStorage(); err != nil {
				return err
			}

			storages, err := store.NewStorages(ctx, env.cfg.Storage, env.logger)
			if err != nil {
				return err
			}
			defer storages.Close()

			services, err := service.NewServices(env.info, storages, env.logger)
			if err != nil {
				return fmt.Errorf("error creating services: %w", err)
			}

			ctx := env.logger.WithContext(ctx)

			state, err := services.VersionService.CheckLaunch(ctx)
			if err != nil {
				return err
			}

			if ack && !state.ReleaseNotesViewed {
				if err = services.VersionService.MarkReleaseNotesViewed(ctx); err != nil {
					return err
				}
				state.ReleaseNotesViewed = true
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(state)
			}
			return printLaunchState(cmd.OutOrStdout(), state)
		},
	}

	cmd.Flags().BoolVar(&ack, "ack-release-notes", false, "Mark the release notes of this version as viewed")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the launch state as JSON")

	return cmd
}

func printLaunchState(w io.Writer, state models.LaunchState) error {
	var b strings.Builder

	switch {
	case state.FreshInstall:
		fmt.Fprintf(&b, "fresh install of %s\n", state.Current)
	case state.Upgraded:
		fmt.Fprintf(&b, "upgraded from %s to %s\n", state.Previous, state.Current)
	default:
		fmt.Fprintf(&b, "launched %s (previous %s)\n", state.Current, state.Previous)
	}

	if len(state.RanActions) > 0 {
		fmt.Fprintf(&b, "upgrade actions: %s\n", strings.Join(state.RanActions, ", "))
	}

	if state.ReleaseNotesViewed {
		b.WriteString("release notes: viewed\n")
	} else {
		b.WriteString("release notes: not viewed\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
