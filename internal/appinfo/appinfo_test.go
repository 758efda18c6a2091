package appinfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/metadata"
	"github.com/MKhiriev/go-app-info/internal/mock"
	"github.com/MKhiriev/go-app-info/models"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

// resetShared restores the package singleton to its pristine state for the
// duration of a test.
func resetShared(t *testing.T) {
	t.Helper()

	reset := func() {
		mu.Lock()
		defer mu.Unlock()
		once = sync.Once{}
		shared = nil
		sources = DefaultSources()
	}

	reset()
	t.Cleanup(reset)
}

func tacBoardSources() Sources {
	return Sources{
		Bundle: metadata.Static(metadata.Metadata{
			metadata.KeyName:    "TacBoard",
			metadata.KeyVersion: "3.1.0",
			metadata.KeyBuild:   "42",
			metadata.KeyDate:    "2020-08-12T10:00:00Z",
		}),
		Commit: metadata.Static(metadata.Metadata{metadata.KeyCommit: "abc1234"}),
	}
}

// ── Shared / Configure ───────────────────────────────────────────────────────

func TestShared_ExposesConfiguredMetadata(t *testing.T) {
	resetShared(t)
	require.NoError(t, Configure(tacBoardSources()))

	info := Shared()

	assert.Equal(t, "TacBoard", info.Name())
	assert.Equal(t, "3.1.0", info.Version())
	assert.Equal(t, 3, info.VersionMajor())
	assert.Equal(t, 1, info.VersionMinor())
	assert.Equal(t, 0, info.VersionRevision())
	assert.Equal(t, "42", info.Build())
	assert.Equal(t, "abc1234", info.Commit())
	assert.True(t, time.Date(2020, 8, 12, 10, 0, 0, 0, time.UTC).Equal(info.Date()))
}

func TestShared_ReturnsIdenticalInstance(t *testing.T) {
	resetShared(t)
	require.NoError(t, Configure(tacBoardSources()))

	first := Shared()
	second := Shared()

	assert.Same(t, first, second)
}

func TestShared_ConcurrentFirstAccessLoadsOnce(t *testing.T) {
	resetShared(t)

	var calls atomic.Int32
	bundle := metadata.ProviderFunc(func() (metadata.Metadata, error) {
		calls.Add(1)
		time.Sleep(5 * time.Millisecond)
		return metadata.Metadata{metadata.KeyVersion: "1.0.0"}, nil
	})
	require.NoError(t, Configure(Sources{Bundle: bundle, Commit: metadata.Static(nil)}))

	const goroutines = 32
	results := make([]*Info, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = Shared()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, got := range results {
		assert.Same(t, results[0], got)
	}
}

func TestConfigure_AfterLoad_ReturnsError(t *testing.T) {
	resetShared(t)
	require.NoError(t, Configure(tacBoardSources()))
	before := Shared()

	err := Configure(Sources{Bundle: metadata.Static(metadata.Metadata{metadata.KeyName: "Other"})})

	assert.ErrorIs(t, err, ErrAlreadyLoaded)
	assert.Same(t, before, Shared())
	assert.Equal(t, "TacBoard", Shared().Name())
}

func TestConfigure_CanBeReplacedBeforeLoad(t *testing.T) {
	resetShared(t)
	require.NoError(t, Configure(Sources{Bundle: metadata.Static(metadata.Metadata{metadata.KeyName: "First"})}))
	require.NoError(t, Configure(Sources{Bundle: metadata.Static(metadata.Metadata{metadata.KeyName: "Second"})}))

	assert.Equal(t, "Second", Shared().Name())
}

func TestShared_DefaultSources_DoesNotPanic(t *testing.T) {
	resetShared(t)

	assert.NotPanics(t, func() {
		info := Shared()
		require.NotNil(t, info)
	})
}

func TestShared_PanickingProviderStillConstructs(t *testing.T) {
	resetShared(t)

	var buf bytes.Buffer
	bundle := metadata.ProviderFunc(func() (metadata.Metadata, error) {
		panic("plist is corrupt")
	})
	require.NoError(t, Configure(Sources{
		Bundle: bundle,
		Commit: metadata.Static(metadata.Metadata{metadata.KeyCommit: "abc1234"}),
		Logger: &logger.Logger{Logger: zerolog.New(&buf)},
	}))

	var info *Info
	require.NotPanics(t, func() { info = Shared() })

	require.NotNil(t, info)
	assert.Same(t, info, Shared())
	assert.Equal(t, "", info.Name())
	assert.Equal(t, "abc1234", info.Commit())
	assert.Contains(t, buf.String(), "plist is corrupt")
}

// ── load: graceful degradation ───────────────────────────────────────────────

func TestLoad_MissingEverything_DegradesToDefaults(t *testing.T) {
	info := load(Sources{})

	assert.Equal(t, "", info.Name())
	assert.Equal(t, "", info.Version())
	assert.Equal(t, 0, info.VersionMajor())
	assert.Equal(t, 0, info.VersionMinor())
	assert.Equal(t, 0, info.VersionRevision())
	assert.Equal(t, "", info.Build())
	assert.Equal(t, "", info.Commit())
	assert.Equal(t, time.Unix(0, 0).UTC(), info.Date())
}

func TestLoad_MalformedVersion_DoesNotFail(t *testing.T) {
	info := load(Sources{Bundle: metadata.Static(metadata.Metadata{metadata.KeyVersion: "two.point.oh"})})

	assert.Equal(t, "two.point.oh", info.Version())
	assert.Equal(t, models.Version{}, info.ParsedVersion())
}

func TestLoad_SingleComponentVersion(t *testing.T) {
	info := load(Sources{Bundle: metadata.Static(metadata.Metadata{metadata.KeyVersion: "2"})})

	assert.Equal(t, 2, info.VersionMajor())
	assert.Equal(t, 0, info.VersionMinor())
	assert.Equal(t, 0, info.VersionRevision())
}

func TestLoad_ProviderErrorsAreLoggedAndAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	bundle := mock.NewMockProvider(ctrl)
	commit := mock.NewMockProvider(ctrl)

	bundle.EXPECT().Metadata().Return(metadata.Metadata{metadata.KeyName: "TacBoard"}, errors.New("bundle file unreadable"))
	commit.EXPECT().Metadata().Return(nil, os.ErrNotExist)

	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	info := load(Sources{Bundle: bundle, Commit: commit, Logger: log})

	assert.Equal(t, "TacBoard", info.Name())
	assert.Equal(t, "", info.Commit())
	assert.Contains(t, buf.String(), "bundle file unreadable")
	assert.Contains(t, buf.String(), `"source":"commit"`)
}

func TestLoad_NilProvidersAreWarned(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}

	load(Sources{Logger: log})

	assert.Contains(t, buf.String(), "no metadata provider configured")
}

func TestLoad_FromFiles(t *testing.T) {
	dir := t.TempDir()
	bundlePath := filepath.Join(dir, "Info.yaml")
	commitPath := filepath.Join(dir, "commit.yaml")
	require.NoError(t, os.WriteFile(bundlePath, []byte("CFBundleDisplayName: TacBoard\nCFBundleShortVersionString: 3.1.0\nCFBundleVersion: 42\n"), 0o600))
	require.NoError(t, os.WriteFile(commitPath, []byte("commit: abc1234\n"), 0o600))

	info := load(Sources{
		Bundle: metadata.BundleFile(bundlePath),
		Commit: metadata.CommitFile(commitPath),
	})

	assert.Equal(t, "TacBoard", info.Name())
	assert.Equal(t, "3.1.0", info.Version())
	assert.Equal(t, "42", info.Build())
	assert.Equal(t, "abc1234", info.Commit())
}

// ── Presentation helpers ─────────────────────────────────────────────────────

func TestInfo_String(t *testing.T) {
	info := load(tacBoardSources())

	assert.Equal(t, "TacBoard 3.1.0 (build 42, commit abc1234, built 2020-08-12T10:00:00Z)", info.String())
}

func TestInfo_MarshalZerologObject(t *testing.T) {
	info := load(tacBoardSources())

	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	zl.Info().Object("app", info).Send()

	var entry struct {
		App map[string]any `json:"app"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "TacBoard", entry.App["name"])
	assert.Equal(t, "3.1.0", entry.App["version"])
	assert.Equal(t, "42", entry.App["build"])
	assert.Equal(t, "abc1234", entry.App["commit"])
	assert.Contains(t, entry.App, "date")
}

func TestInfo_Response(t *testing.T) {
	info := load(tacBoardSources())

	got := info.Response()

	assert.Equal(t, models.AppInfoResponse{
		Name:            "TacBoard",
		Version:         "3.1.0",
		VersionMajor:    3,
		VersionMinor:    1,
		VersionRevision: 0,
		Build:           "42",
		Date:            time.Date(2020, 8, 12, 10, 0, 0, 0, time.UTC),
		Commit:          "abc1234",
	}, got)
}
