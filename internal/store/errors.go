package store

import "errors"

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these so callers can match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan settings row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan settings rows")
)

var (
	// ErrEmptyKey is returned by [SettingsRepository] methods given an
	// empty key.
	ErrEmptyKey = errors.New("settings key must not be empty")

	// ErrUnknownDialect is returned by [NewConnect] for a DSN it cannot
	// map to a driver.
	ErrUnknownDialect = errors.New("unknown database dialect")
)
