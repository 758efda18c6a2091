package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-app-info/internal/config"
	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/utils"
	"github.com/MKhiriev/go-app-info/models"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

const (
	versionPath = "/api/version/"
	infoPath    = "/api/info"

	headerTraceID    = "X-Trace-ID"
	headerAppVersion = "X-App-Version"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs an HTTP/REST implementation of
// [RemoteAdapter]. The base URL is taken from adapterCfg.HTTPAddress; a bare
// "host:port" gets an "http://" scheme.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.Adapter, logger *logger.Logger) (RemoteAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpRemoteAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request starts a resty request carrying a fresh trace id, so a remote
// instance logs the call under the same id this side does.
func (h *httpRemoteAdapter) request(ctx context.Context) (*resty.Request, *logger.Logger) {
	traceID := utils.NewTraceID()
	log := h.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	return h.client.R().
		SetContext(ctx).
		SetHeader(headerTraceID, traceID), log
}

// GetVersion implements [RemoteAdapter].
func (h *httpRemoteAdapter) GetVersion(ctx context.Context) (string, error) {
	req, log := h.request(ctx)

	resp, err := req.
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("remote version request failed")
		return "", err
	}

	version := strings.TrimSpace(resp.String())
	if version == "" {
		return "", ErrEmptyVersion
	}

	log.Debug().
		Str("version", version).
		Dur("duration", resp.Time()).
		Msg("remote version received")
	return version, nil
}

// GetInfo implements [RemoteAdapter]. The X-App-Version response header is
// used when the body omits the version; the numeric components are then
// parsed from it.
func (h *httpRemoteAdapter) GetInfo(ctx context.Context) (models.AppInfoResponse, error) {
	var info models.AppInfoResponse

	req, log := h.request(ctx)

	resp, err := req.
		SetHeader("Accept", "application/json").
		SetResult(&info).
		Get(infoPath)
	if err != nil {
		return models.AppInfoResponse{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Int("status", resp.StatusCode()).Msg("remote info request failed")
		return models.AppInfoResponse{}, err
	}

	if info.Version == "" {
		info.Version = resp.Header().Get(headerAppVersion)
		v := models.ParseVersion(info.Version)
		info.VersionMajor, info.VersionMinor, info.VersionRevision = v.Major, v.Minor, v.Revision
	}

	log.Debug().
		Str("name", info.Name).
		Str("version", info.Version).
		Dur("duration", resp.Time()).
		Msg("remote info received")
	return info, nil
}
