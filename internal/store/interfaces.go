package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository is a persistent string key/value store used for
// launch tracking.
type SettingsRepository interface {
	// Get returns the value stored under key. ok is false when the key has
	// never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// GetAll returns every key starting with prefix. An empty prefix
	// returns the whole table.
	GetAll(ctx context.Context, prefix string) (map[string]string, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
