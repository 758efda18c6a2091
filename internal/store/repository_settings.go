package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-app-info/internal/logger"
)

const (
	settingsTable   = "settings"
	settingsUpsert  = "ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
	columnKey       = "key"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

// settingsRepository is the SQL implementation of [SettingsRepository].
// The same queries run on PostgreSQL and SQLite; only the placeholder
// format differs.
type settingsRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating settings repository")
	return &settingsRepository{
		db:      db,
		builder: db.statementBuilder(),
		logger:  logger,
	}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(columnValue).
		From(settingsTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		value string
		found bool
	)
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		found = true
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
		if errors.Is(scanErr, sql.ErrNoRows) {
			found = false
			return nil
		}
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Get").Str("key", key).Msg("error reading setting")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, found, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(settingsTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix(settingsUpsert).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.Set").Str("key", key).Msg("error saving setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *settingsRepository) GetAll(ctx context.Context, prefix string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	builder := r.builder.
		Select(columnKey, columnValue).
		From(settingsTable).
		OrderBy(columnKey)
	if prefix != "" {
		// LIKE would treat "_" in key names as a wildcard
		builder = builder.Where(sq.Expr("substr(key, 1, ?) = ?", len(prefix), prefix))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result map[string]string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := r.db.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		result = make(map[string]string)
		for rows.Next() {
			var k, v string
			if scanErr := rows.Scan(&k, &v); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			result[k] = v
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetAll").Str("prefix", prefix).Msg("error listing settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}
