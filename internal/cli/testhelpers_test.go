package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-app-info/internal/config"
	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/models"
)

// fakeInfo stands in for the process-wide metadata, which can be loaded only
// once per test binary.
type fakeInfo struct {
	resp models.AppInfoResponse
}

func infoAt(version string) fakeInfo {
	v := models.ParseVersion(version)
	return fakeInfo{resp: models.AppInfoResponse{
		Name:            "TacBoard",
		Version:         version,
		VersionMajor:    v.Major,
		VersionMinor:    v.Minor,
		VersionRevision: v.Revision,
		Build:           "417",
		Date:            time.Date(2021, 4, 2, 10, 0, 0, 0, time.UTC),
		Commit:          "a1b2c3d",
	}}
}

func (f fakeInfo) Version() string { return f.resp.Version }
func (f fakeInfo) ParsedVersion() models.Version { return f.resp.ParsedVersion() }
func (f fakeInfo) Response() models.AppInfoResponse { return f.resp }
func (f fakeInfo) String() string { return f.resp.Name + " " + f.resp.Version }
func (f fakeInfo) MarshalZerologObject(e *zerolog.Event) { e.Str("name", f.resp.Name).Str("version", f.resp.Version) }

// run executes the command tree with args against info and returns what was
// written to stdout and to the log.
func run(t *testing.T, ctx context.Context, info BuildInfo, args ...string) (string, string, error) {
	t.Helper()

	var out, logs bytes.Buffer
	cmd := newRootCommand(ctx, options{
		loadInfo: func(*config.StructuredConfig, *logger.Logger) BuildInfo { return info },
		newLogger: func(*config.StructuredConfig, *cobra.Command) *logger.Logger {
			return &logger.Logger{Logger: zerolog.New(&logs)}
		},
	})
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), logs.String(), err
}
