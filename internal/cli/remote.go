package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-app-info/internal/adapter"
	"github.com/MKhiriev/go-app-info/models"
)

func newRemoteCommand(ctx context.Context, env *environment) *cobra.Command {
	var (
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Fetch the build metadata of a remote instance and compare it with this one.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.cfg.ValidateRemote(); err != nil {
				return err
			}

			remote, err := adapter.NewHTTPRemoteAdapter(env.cfg.Adapter, env.logger)
			if err != nil {
				return err
			}

			loader := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			loader.Suffix = " Fetching " + env.cfg.Adapter.HTTPAddress + "..."
			loader.Start()
			info, err := remote.GetInfo(ctx)
			loader.Stop()
			if err != nil {
				return fmt.Errorf("fetch remote build metadata: %w", err)
			}

			out := cmd.OutOrStdout()
			if err = printInfo(out, info, format); err != nil {
				return err
			}

			local := env.info.ParsedVersion()
			cmp := info.ParsedVersion().Compare(local)
			if _, err = fmt.Fprintln(out, describeComparison(local, info, cmp)); err != nil {
				return err
			}

			if strict && cmp < 0 {
				return fmt.Errorf("%w: %s < %s", ErrRemoteBehind, info.ParsedVersion(), local)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, table or json")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the remote instance runs an older version")

	return cmd
}

func describeComparison(local models.Version, remote models.AppInfoResponse, cmp int) string {
	switch {
	case cmp > 0:
		return fmt.Sprintf("remote %s is newer than local %s", remote.ParsedVersion(), local)
	case cmp < 0:
		return fmt.Sprintf("remote %s is older than local %s", remote.ParsedVersion(), local)
	default:
		return fmt.Sprintf("remote and local run the same version %s", local)
	}
}
