package store

import (
	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func keyPredicate(key string, ns Namespace) sq.Sqlizer {
	return sq.And{sq.Eq{"namespace": string(ns)}, sq.Eq{"key": key}}
}

// prefixPredicate matches keys by a literal prefix. substr is used instead
// of LIKE so '%' and '_' in keys are not wildcards.
func prefixPredicate(prefix string, ns Namespace) sq.Sqlizer {
	return sq.And{
		sq.Eq{"namespace": string(ns)},
		sq.Expr("substr(key, 1, ?) = ?", len(prefix), prefix),
	}
}

func buildGetQuery(key string, ns Namespace) (string, []any, error) {
	return psql.Select("value").From(kvTable).Where(keyPredicate(key, ns)).ToSql()
}

func buildUpsertQuery(key string, value string, ns Namespace) (string, []any, error) {
	return psql.Insert(kvTable).
		Columns("namespace", "key", "value", "updated_at").
		Values(string(ns), key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteQuery(key string, ns Namespace) (string, []any, error) {
	return psql.Delete(kvTable).Where(keyPredicate(key, ns)).ToSql()
}

func buildKeysQuery(prefix string, ns Namespace) (string, []any, error) {
	return psql.Select("key").From(kvTable).Where(prefixPredicate(prefix, ns)).OrderBy("key").ToSql()
}

func buildDeletePrefixQuery(prefix string, ns Namespace) (string, []any, error) {
	return psql.Delete(kvTable).Where(prefixPredicate(prefix, ns)).ToSql()
}
