package store

import (
	sq "github.com/Masterminds/squirrel"
)

const settingsTable = "settings"

// SQLite takes "?" placeholders, which is the squirrel default.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSettingQuery(key string) (string, []any, error) {
	return sqlBuilder.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func buildSetSettingQuery(key, value string) (string, []any, error) {
	return sqlBuilder.
		Insert(settingsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
