package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/store"
	"github.com/MKhiriev/go-app-info/models"
)

// Settings keys owned by the version service.
const (
	keyPrefix                  = "version_manager."
	keyPreviousVersion         = keyPrefix + "previous_version_"
	keyPreviousVersionMajor    = keyPreviousVersion + "major"
	keyPreviousVersionMinor    = keyPreviousVersion + "minor"
	keyPreviousVersionRevision = keyPreviousVersion + "revision"
	keyReleaseNotesViewed      = keyPrefix + "release_notes_viewed"
	keyCompletedActions        = keyPrefix + "completed_upgrade_actions"
)

// UpgradeAction is a one-time migration step run on the first launch of a
// build that has not run it before. Name is persisted and must stay stable
// across releases.
type UpgradeAction struct {
	Name string
	Run  func(ctx context.Context) error
}

type versionService struct {
	settings store.SettingsRepository
	info     BuildMetadata
	actions  []UpgradeAction

	logger *logger.Logger
}

// NewVersionService builds a [VersionService]. actions run in the given
// order; their names must be unique and non-empty.
func NewVersionService(settings store.SettingsRepository, info BuildMetadata, logger *logger.Logger, actions ...UpgradeAction) (VersionService, error) {
	if info == nil {
		return nil, ErrNoBuildMetadata
	}

	seen := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		if a.Name == "" {
			return nil, ErrUnnamedUpgradeAction
		}
		if _, ok := seen[a.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUpgradeAction, a.Name)
		}
		seen[a.Name] = struct{}{}
	}

	return &versionService{
		settings: settings,
		info:     info,
		actions:  slices.Clone(actions),
		logger:   logger,
	}, nil
}

func (s *versionService) CheckLaunch(ctx context.Context) (models.LaunchState, error) {
	log := logger.FromContext(ctx)

	previous, err := s.previousVersion(ctx)
	if err != nil {
		return models.LaunchState{}, err
	}

	state := models.LaunchState{
		Previous: previous,
		Current:  s.info.ParsedVersion(),
	}

	completed, err := s.completedActions(ctx)
	if err != nil {
		return models.LaunchState{}, err
	}

	switch {
	case previous.IsZero():
		state.FreshInstall = true
		if err = s.setBool(ctx, keyReleaseNotesViewed, true); err != nil {
			return models.LaunchState{}, err
		}
		for _, a := range s.actions {
			if !slices.Contains(completed, a.Name) {
				completed = append(completed, a.Name)
			}
		}
		if err = s.saveCompletedActions(ctx, completed); err != nil {
			return models.LaunchState{}, err
		}
	case state.Current.Compare(previous) > 0:
		state.Upgraded = true
		if err = s.setBool(ctx, keyReleaseNotesViewed, false); err != nil {
			return models.LaunchState{}, err
		}
	}

	ran, err := s.runPendingActions(ctx, completed)
	state.RanActions = ran
	if err != nil {
		return state, err
	}

	if err = s.saveVersion(ctx, state.Current); err != nil {
		return state, err
	}

	if state.ReleaseNotesViewed, err = s.getBool(ctx, keyReleaseNotesViewed); err != nil {
		return state, err
	}

	log.Info().
		Str("func", "*versionService.CheckLaunch").
		Stringer("previous", state.Previous).
		Stringer("current", state.Current).
		Bool("fresh_install", state.FreshInstall).
		Bool("upgraded", state.Upgraded).
		Strs("ran_actions", state.RanActions).
		Msg("launch checked")

	return state, nil
}

func (s *versionService) MarkReleaseNotesViewed(ctx context.Context) error {
	return s.setBool(ctx, keyReleaseNotesViewed, true)
}

// runPendingActions runs, in registration order, every action missing from
// completed and records each success immediately.
func (s *versionService) runPendingActions(ctx context.Context, completed []string) ([]string, error) {
	var ran []string
	for _, a := range s.actions {
		if slices.Contains(completed, a.Name) {
			continue
		}
		if a.Run != nil {
			if err := a.Run(ctx); err != nil {
				s.logger.Err(err).Str("action", a.Name).Msg("upgrade action failed")
				return ran, fmt.Errorf("%w: %s: %w", ErrUpgradeActionFailed, a.Name, err)
			}
		}

		completed = append(completed, a.Name)
		if err := s.saveCompletedActions(ctx, completed); err != nil {
			return ran, err
		}
		ran = append(ran, a.Name)
	}
	return ran, nil
}

// previousVersion reads the recorded version components in one query;
// missing or unparsable components read as 0.
func (s *versionService) previousVersion(ctx context.Context) (models.Version, error) {
	stored, err := s.settings.GetAll(ctx, keyPreviousVersion)
	if err != nil {
		return models.Version{}, fmt.Errorf("error reading previous version: %w", err)
	}

	return models.Version{
		Major:    s.parseInt(keyPreviousVersionMajor, stored),
		Minor:    s.parseInt(keyPreviousVersionMinor, stored),
		Revision: s.parseInt(keyPreviousVersionRevision, stored),
	}, nil
}

func (s *versionService) saveVersion(ctx context.Context, v models.Version) error {
	fields := []struct {
		key   string
		value int
	}{
		{keyPreviousVersionMajor, v.Major},
		{keyPreviousVersionMinor, v.Minor},
		{keyPreviousVersionRevision, v.Revision},
	}
	for _, f := range fields {
		if err := s.settings.Set(ctx, f.key, strconv.Itoa(f.value)); err != nil {
			return fmt.Errorf("error saving launched version: %w", err)
		}
	}
	return nil
}

func (s *versionService) parseInt(key string, stored map[string]string) int {
	raw, ok := stored[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn().Str("key", key).Str("value", raw).Msg("ignoring malformed version setting")
		return 0
	}
	return n
}

// getBool reads a boolean setting; missing values read as false.
func (s *versionService) getBool(ctx context.Context, key string) (bool, error) {
	raw, ok, err := s.settings.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("error reading %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	b, _ := strconv.ParseBool(raw)
	return b, nil
}

func (s *versionService) setBool(ctx context.Context, key string, value bool) error {
	if err := s.settings.Set(ctx, key, strconv.FormatBool(value)); err != nil {
		return fmt.Errorf("error saving %s: %w", key, err)
	}
	return nil
}

func (s *versionService) completedActions(ctx context.Context) ([]string, error) {
	raw, ok, err := s.settings.Get(ctx, keyCompletedActions)
	if err != nil {
		return nil, fmt.Errorf("error reading completed upgrade actions: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var names []string
	if err = json.Unmarshal([]byte(raw), &names); err != nil {
		s.logger.Warn().Err(err).Msg("ignoring malformed completed upgrade actions")
		return nil, nil
	}
	return names, nil
}

func (s *versionService) saveCompletedActions(ctx context.Context, names []string) error {
	payload, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("error encoding completed upgrade actions: %w", err)
	}
	if err = s.settings.Set(ctx, keyCompletedActions, string(payload)); err != nil {
		return fmt.Errorf("error saving completed upgrade actions: %w", err)
	}
	return nil
}
