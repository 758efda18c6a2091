package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/mock"
	"github.com/MKhiriev/go-app-info/models"
)

// memorySettings is an in-memory SettingsRepository.
type memorySettings struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemorySettings(initial map[string]string) *memorySettings {
	data := make(map[string]string, len(initial))
	for k, v := range initial {
		data[k] = v
	}
	return &memorySettings{data: data}
}

func (m *memorySettings) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memorySettings) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memorySettings) GetAll(_ context.Context, prefix string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string)
	for k, v := range m.data {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out[k] = v
		}
	}
	return out, nil
}

func metadataAt(t *testing.T, v models.Version) *mock.MockBuildMetadata {
	t.Helper()
	info := mock.NewMockBuildMetadata(gomock.NewController(t))
	info.EXPECT().ParsedVersion().Return(v).AnyTimes()
	return info
}

func previousLaunch(v models.Version, extra map[string]string) map[string]string {
	m := map[string]string{
		keyPreviousVersionMajor:    strconv.Itoa(v.Major),
		keyPreviousVersionMinor:    strconv.Itoa(v.Minor),
		keyPreviousVersionRevision: strconv.Itoa(v.Revision),
	}
	for k, val := range extra {
		m[k] = val
	}
	return m
}

// recorder returns an action that appends its name to log when run.
func recorder(name string, log *[]string) UpgradeAction {
	return UpgradeAction{Name: name, Run: func(context.Context) error {
		*log = append(*log, name)
		return nil
	}}
}

// ── NewVersionService ────────────────────────────────────────────────────────

func TestNewVersionService_Validation(t *testing.T) {
	settings := newMemorySettings(nil)
	info := metadataAt(t, models.Version{Major: 1})

	_, err := NewVersionService(settings, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoBuildMetadata)

	_, err = NewVersionService(settings, info, logger.Nop(), UpgradeAction{})
	assert.ErrorIs(t, err, ErrUnnamedUpgradeAction)

	_, err = NewVersionService(settings, info, logger.Nop(), UpgradeAction{Name: "a"}, UpgradeAction{Name: "a"})
	assert.ErrorIs(t, err, ErrDuplicateUpgradeAction)
}

// ── CheckLaunch ──────────────────────────────────────────────────────────────

func TestCheckLaunch_FreshInstall(t *testing.T) {
	settings := newMemorySettings(nil)
	var ran []string
	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 2, Minor: 3, Revision: 1}), logger.Nop(),
		recorder("version0p2p0", &ran))
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.NoError(t, err)

	assert.True(t, state.FreshInstall)
	assert.False(t, state.Upgraded)
	assert.True(t, state.ReleaseNotesViewed)
	assert.Empty(t, state.RanActions)
	assert.Empty(t, ran, "a fresh install skips upgrade actions")
	assert.Equal(t, models.Version{}, state.Previous)
	assert.Equal(t, models.Version{Major: 2, Minor: 3, Revision: 1}, state.Current)

	assert.Equal(t, "2", settings.data[keyPreviousVersionMajor])
	assert.Equal(t, "3", settings.data[keyPreviousVersionMinor])
	assert.Equal(t, "1", settings.data[keyPreviousVersionRevision])
	assert.JSONEq(t, `["version0p2p0"]`, settings.data[keyCompletedActions])
}

func TestCheckLaunch_Upgrade(t *testing.T) {
	settings := newMemorySettings(previousLaunch(models.Version{Major: 2, Minor: 2, Revision: 9},
		map[string]string{keyReleaseNotesViewed: "true"}))
	var ran []string
	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 2, Minor: 3}), logger.Nop(),
		recorder("first", &ran), recorder("second", &ran))
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.NoError(t, err)

	assert.False(t, state.FreshInstall)
	assert.True(t, state.Upgraded)
	assert.False(t, state.ReleaseNotesViewed)
	assert.Equal(t, []string{"first", "second"}, state.RanActions)
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.Equal(t, "3", settings.data[keyPreviousVersionMinor])
	assert.Equal(t, "0", settings.data[keyPreviousVersionRevision])
}

func TestCheckLaunch_SameVersionKeepsReleaseNotesFlag(t *testing.T) {
	v := models.Version{Major: 1, Minor: 4}
	settings := newMemorySettings(previousLaunch(v, map[string]string{
		keyReleaseNotesViewed: "true",
		keyCompletedActions:   `["done"]`,
	}))
	var ran []string
	svc, err := NewVersionService(settings, metadataAt(t, v), logger.Nop(), recorder("done", &ran))
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.NoError(t, err)

	assert.False(t, state.FreshInstall)
	assert.False(t, state.Upgraded)
	assert.True(t, state.ReleaseNotesViewed)
	assert.Empty(t, ran)
}

func TestCheckLaunch_DowngradeIsNotAnUpgrade(t *testing.T) {
	settings := newMemorySettings(previousLaunch(models.Version{Major: 3}, map[string]string{keyReleaseNotesViewed: "true"}))
	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 2, Minor: 9}), logger.Nop())
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.NoError(t, err)

	assert.False(t, state.Upgraded)
	assert.True(t, state.ReleaseNotesViewed)
	assert.Equal(t, "2", settings.data[keyPreviousVersionMajor])
}

func TestCheckLaunch_NewActionRunsOnceOnExistingInstall(t *testing.T) {
	v := models.Version{Major: 1}
	settings := newMemorySettings(previousLaunch(v, map[string]string{keyCompletedActions: `["old"]`}))
	var ran []string
	svc, err := NewVersionService(settings, metadataAt(t, v), logger.Nop(),
		recorder("old", &ran), recorder("new", &ran))
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, state.RanActions)

	state, err = svc.CheckLaunch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, state.RanActions)
	assert.Equal(t, []string{"new"}, ran)
}

func TestCheckLaunch_FailingActionStopsRun(t *testing.T) {
	settings := newMemorySettings(previousLaunch(models.Version{Major: 1}, nil))
	var ran []string
	boom := errors.New("boom")
	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 2}), logger.Nop(),
		recorder("first", &ran),
		UpgradeAction{Name: "broken", Run: func(context.Context) error { return boom }},
		recorder("third", &ran),
	)
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpgradeActionFailed)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"first"}, state.RanActions)
	assert.Equal(t, []string{"first"}, ran)
	assert.JSONEq(t, `["first"]`, settings.data[keyCompletedActions])
	assert.Equal(t, "1", settings.data[keyPreviousVersionMajor], "version is not advanced after a failed action")
}

func TestCheckLaunch_MalformedSettingsReadAsZero(t *testing.T) {
	settings := newMemorySettings(map[string]string{
		keyPreviousVersionMajor: "two",
		keyCompletedActions:     "not json",
	})
	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 1}), logger.Nop())
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.NoError(t, err)
	assert.True(t, state.FreshInstall)
}

func TestCheckLaunch_StoreErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	dbErr := errors.New("database is gone")
	settings.EXPECT().GetAll(gomock.Any(), keyPreviousVersion).Return(nil, dbErr)

	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 1}), logger.Nop())
	require.NoError(t, err)

	_, err = svc.CheckLaunch(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

func TestCheckLaunch_SaveVersionErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := mock.NewMockSettingsRepository(ctrl)
	dbErr := errors.New("read-only database")

	settings.EXPECT().GetAll(gomock.Any(), keyPreviousVersion).Return(map[string]string{
		keyPreviousVersionMajor:    "1",
		keyPreviousVersionMinor:    "0",
		keyPreviousVersionRevision: "0",
	}, nil)
	settings.EXPECT().Get(gomock.Any(), keyCompletedActions).Return("", false, nil)
	settings.EXPECT().Set(gomock.Any(), keyPreviousVersionMajor, "1").Return(dbErr)

	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 1}), logger.Nop())
	require.NoError(t, err)

	_, err = svc.CheckLaunch(context.Background())
	assert.ErrorIs(t, err, dbErr)
}

// ── MarkReleaseNotesViewed ───────────────────────────────────────────────────

func TestMarkReleaseNotesViewed(t *testing.T) {
	settings := newMemorySettings(previousLaunch(models.Version{Major: 1}, nil))
	svc, err := NewVersionService(settings, metadataAt(t, models.Version{Major: 2}), logger.Nop())
	require.NoError(t, err)

	state, err := svc.CheckLaunch(context.Background())
	require.NoError(t, err)
	require.False(t, state.ReleaseNotesViewed)

	require.NoError(t, svc.MarkReleaseNotesViewed(context.Background()))

	state, err = svc.CheckLaunch(context.Background())
	require.NoError(t, err)
	assert.True(t, state.ReleaseNotesViewed)
	assert.False(t, state.Upgraded)
}

// ── NewServices ──────────────────────────────────────────────────────────────

func TestNewServices_WithoutStorage(t *testing.T) {
	services, err := NewServices(metadataAt(t, models.Version{}), nil, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AppInfoService)
	assert.Nil(t, services.VersionService)
}
