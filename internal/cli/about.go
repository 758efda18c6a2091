package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-app-info/internal/tui"
)

const aboutCommandName = "about"

func newAboutCommand(ctx context.Context, env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   aboutCommandName,
		Short: "Show the about screen.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.New(env.logger).About(ctx, env.info.Response())
		},
	}
}
