package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-app-info/internal/handler"
	"github.com/MKhiriev/go-app-info/internal/server"
	"github.com/MKhiriev/go-app-info/internal/service"
	"github.com/MKhiriev/go-app-info/internal/store"
)

func newServeCommand(ctx context.Context, env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the build metadata over HTTP and gRPC.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.cfg.ValidateServe(); err != nil {
				return err
			}

			var storages *store.Storages
			if env.cfg.ValidateStorage() == nil {
				var err error
				storages, err = store.NewStorages(ctx, env.cfg.Storage, env.logger)
				if err != nil {
					return err
				}
				defer storages.Close()
			}

			services, err := service.NewServices(env.info, storages, env.logger)
			if err != nil {
				return fmt.Errorf("error creating services: %w", err)
			}

			handlers, err := handler.NewHandlers(services, env.cfg.Server, env.logger)
			if err != nil {
				return fmt.Errorf("error creating handlers: %w", err)
			}

			srv, err := server.NewServer(handlers, env.cfg.Server, env.logger)
			if err != nil {
				return fmt.Errorf("error creating server: %w", err)
			}

			return srv.RunServer(ctx)
		},
	}
}
