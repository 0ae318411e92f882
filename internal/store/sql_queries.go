// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Every hosted table shares one schema: a text primary key, an opaque
// ordering column mirrored from the document, and the document itself as
// serialized JSON.
const (
	colID      = "id"
	colSortKey = "sort_key"
	colDoc     = "doc"
)

func buildSelectAllQuery(spec TableSpec, orderBy string, ascending bool, pf squirrel.PlaceholderFormat) (string, []any, error) {
	b := squirrel.Select(colDoc).From(spec.Name).PlaceholderFormat(pf)

	if orderBy != "" {
		col, err := orderColumn(spec, orderBy)
		if err != nil {
			return "", nil, err
		}
		dir := "DESC"
		if ascending {
			dir = "ASC"
		}
		b = b.OrderBy(col + " " + dir)
	}

	return b.ToSql()
}

// orderColumn maps a requested logical ordering field onto a real column:
// "id" orders by the primary key, the table's registered sort field orders
// by sort_key. Anything else is refused so the field name never reaches SQL.
func orderColumn(spec TableSpec, orderBy string) (string, error) {
	switch orderBy {
	case colID:
		return colID, nil
	case spec.SortField:
		return colSortKey, nil
	default:
		return "", fmt.Errorf("table %s cannot be ordered by %q", spec.Name, orderBy)
	}
}

func buildSelectOneQuery(spec TableSpec, id string, pf squirrel.PlaceholderFormat) (string, []any, error) {
	return squirrel.Select(colDoc).
		From(spec.Name).
		Where(squirrel.Eq{colID: id}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildInsertQuery(spec TableSpec, id, sortKey string, doc []byte, pf squirrel.PlaceholderFormat) (string, []any, error) {
	return squirrel.Insert(spec.Name).
		Columns(colID, colSortKey, colDoc).
		Values(id, sortKey, string(doc)).
		PlaceholderFormat(pf).
		ToSql()
}

func buildUpdateQuery(spec TableSpec, id, sortKey string, doc []byte, pf squirrel.PlaceholderFormat) (string, []any, error) {
	return squirrel.Update(spec.Name).
		Set(colSortKey, sortKey).
		Set(colDoc, string(doc)).
		Where(squirrel.Eq{colID: id}).
		PlaceholderFormat(pf).
		ToSql()
}

// buildUpsertQuery inserts the row or replaces an existing one in place.
// ON CONFLICT is understood by both supported dialects.
func buildUpsertQuery(spec TableSpec, id, sortKey string, doc []byte, pf squirrel.PlaceholderFormat) (string, []any, error) {
	return squirrel.Insert(spec.Name).
		Columns(colID, colSortKey, colDoc).
		Values(id, sortKey, string(doc)).
		Suffix("ON CONFLICT (id) DO UPDATE SET sort_key = excluded.sort_key, doc = excluded.doc").
		PlaceholderFormat(pf).
		ToSql()
}

func buildDeleteQuery(spec TableSpec, id string, pf squirrel.PlaceholderFormat) (string, []any, error) {
	return squirrel.Delete(spec.Name).
		Where(squirrel.Eq{colID: id}).
		PlaceholderFormat(pf).
		ToSql()
}

func buildDeleteAllQuery(spec TableSpec, pf squirrel.PlaceholderFormat) (string, []any, error) {
	return squirrel.Delete(spec.Name).
		PlaceholderFormat(pf).
		ToSql()
}
