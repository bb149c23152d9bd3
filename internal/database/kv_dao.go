package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
)

const _kvTable = "kv_entries"

// KVDAO stores string values by key. It is the durable attendance medium.
type KVDAO struct {
	Logger *slog.Logger
	*DB
}

func NewKVDAO(logger *slog.Logger, db *DB) *KVDAO {
	return &KVDAO{
		Logger: logger.With("dao", "kv"),
		DB:     db,
	}
}

func (dao *KVDAO) Get(ctx context.Context, key string) (string, bool, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("value").
		From(_kvTable).
		Where(squirrel.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", false, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var value string
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&value); err != nil {
		if IsNoRows(err) {
			logger.Debug("success query execute", "found", false)
			return "", false, nil
		}
		if IsUndefinedTable(err) {
			logger.Warn("kv table is missing, treating key as absent", "error", err)
			return "", false, nil
		}

		logger.Warn("failed query execute", "error", err)

		return "", false, err
	}

	logger.Debug("success query execute", "found", true, "size", len(value))

	return value, true, nil
}

func (dao *KVDAO) Set(ctx context.Context, key, value string) error {
	logger := dao.Logger.With("query", "set")

	query, args, err := dao.Builder.
		Insert(_kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "size", len(value))

	return nil
}
