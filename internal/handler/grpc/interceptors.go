// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/utils"
)

// Metadata keys. gRPC lowercases every key on the wire.
const (
	MetadataAppName    = "x-app-name"
	MetadataAppVersion = "x-app-version"
	MetadataAppBuild   = "x-app-build"
	MetadataAppCommit  = "x-app-commit"
	MetadataTraceID    = "x-trace-id"
)

// traceIDInterceptor reuses the caller's x-trace-id or generates a new one
// and attaches a logger carrying it to the context.
func (h *Handler) traceIDInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(MetadataTraceID); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return handler(l.WithContext(ctx), req)
}

func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) buildMetadataInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if err := grpc.SetHeader(ctx, h.buildMetadata(ctx)); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("could not set build metadata header")
	}
	return handler(ctx, req)
}

func (h *Handler) buildMetadataStreamInterceptor(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if err := ss.SetHeader(h.buildMetadata(ss.Context())); err != nil {
		h.logger.Debug().Err(err).Msg("could not set build metadata header")
	}
	return handler(srv, ss)
}

// buildMetadata renders the running build as header metadata, leaving out
// empty values.
func (h *Handler) buildMetadata(ctx context.Context) metadata.MD {
	info := h.services.AppInfoService.GetAppInfo(ctx)

	md := metadata.MD{}
	for key, value := range map[string]string{
		MetadataAppName:    info.Name,
		MetadataAppVersion: info.Version,
		MetadataAppBuild:   info.Build,
		MetadataAppCommit:  info.Commit,
	} {
		if value != "" {
			md.Set(key, value)
		}
	}
	return md
}
