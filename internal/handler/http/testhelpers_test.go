package http

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/mock"
	"github.com/MKhiriev/go-app-info/internal/service"
	"github.com/MKhiriev/go-app-info/models"
)

var tacBoard = models.AppInfoResponse{
	Name:            "TacBoard",
	Version:         "2.3.1",
	VersionMajor:    2,
	VersionMinor:    3,
	VersionRevision: 1,
	Build:           "417",
	Date:            time.Date(2021, 4, 2, 10, 0, 0, 0, time.UTC),
	Commit:          "a1b2c3d",
}

// newHandlerWithInfo builds a Handler whose AppInfoService answers with info.
func newHandlerWithInfo(t *testing.T, info models.AppInfoResponse) *Handler {
	t.Helper()
	svc := mock.NewMockAppInfoService(gomock.NewController(t))
	svc.EXPECT().GetAppVersion(gomock.Any()).Return(info.Version).AnyTimes()
	svc.EXPECT().GetAppInfo(gomock.Any()).Return(info).AnyTimes()

	return NewHandler(&service.Services{AppInfoService: svc}, logger.Nop())
}

// newBufferedLogger returns a logger writing JSON lines to buf.
func newBufferedLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}
