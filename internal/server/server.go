package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-app-info/internal/config"
	"github.com/MKhiriev/go-app-info/internal/handler"
	"github.com/MKhiriev/go-app-info/internal/logger"
)

type App struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	ready      chan struct{}
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating new server...")
	servers := &App{ready: make(chan struct{}), logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until ctx is done or the process receives SIGINT, SIGTERM
// or SIGQUIT, and then shuts every server down gracefully.
func (s *App) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(
		ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

// Run serves until ctx is done or a server fails, then shuts every server
// down. Listeners are bound before Run starts serving, so a bad address is
// reported without leaving the other server running.
func (s *App) Run(ctx context.Context) error {
	servers := s.servers()

	for i, srv := range servers {
		if err := srv.listen(); err != nil {
			for _, bound := range servers[:i] {
				bound.Shutdown()
			}
			return fmt.Errorf("%w: %w", errListen, err)
		}
	}
	close(s.ready)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		group.Go(srv.RunServer)
	}

	group.Go(func() error {
		<-groupCtx.Done()
		s.Shutdown()
		return nil
	})

	err := group.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *App) Shutdown() {
	for _, srv := range s.servers() {
		srv.Shutdown()
	}
}

// Ready is closed once every server has bound its address.
func (s *App) Ready() <-chan struct{} {
	return s.ready
}

// Addresses returns the address of every server keyed by transport. After
// [App.Ready] is closed these are the bound addresses.
func (s *App) Addresses() map[string]string {
	out := make(map[string]string, 2)
	if s.httpServer != nil {
		out["http"] = s.httpServer.addr()
	}
	if s.gRPCServer != nil {
		out["grpc"] = s.gRPCServer.addr()
	}
	return out
}

func (s *App) servers() []Server {
	var servers []Server
	if s.httpServer != nil {
		servers = append(servers, s.httpServer)
	}
	if s.gRPCServer != nil {
		servers = append(servers, s.gRPCServer)
	}
	return servers
}
