// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/vndocs/govportal/internal/logger"
)

// TableRepository is generic row CRUD over the registered hosted tables.
// Rows travel as raw JSON documents; the repository only ever interprets the
// "id" field and the table's sort field.
type TableRepository interface {
	// List returns every document of a table, optionally ordered.
	List(ctx context.Context, table, orderBy string, ascending bool) ([]json.RawMessage, error)

	// Get returns the document with the given id.
	Get(ctx context.Context, table, id string) (json.RawMessage, error)

	// Insert stores a new document. The row must carry a string "id".
	Insert(ctx context.Context, table string, row json.RawMessage) error

	// Update applies a shallow merge patch to the stored document: each
	// top-level field of the patch replaces the corresponding field of the
	// document, absent fields stay untouched.
	Update(ctx context.Context, table, id string, patch json.RawMessage) error

	// Upsert stores the document, replacing any existing row with the same
	// id wholesale.
	Upsert(ctx context.Context, table string, row json.RawMessage) error

	// Delete removes one row.
	Delete(ctx context.Context, table, id string) error

	// DeleteAll removes every row of a table.
	DeleteAll(ctx context.Context, table string) error
}

type tableRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTableRepository constructs a [TableRepository] over db.
func NewTableRepository(db *DB, logger *logger.Logger) TableRepository {
	logger.Debug().Msg("creating table repository")
	return &tableRepository{db: db, logger: logger}
}

func (r *tableRepository) List(ctx context.Context, table, orderBy string, ascending bool) ([]json.RawMessage, error) {
	spec, ok := LookupTable(table)
	if !ok {
		return nil, ErrTableUnknown
	}

	query, args, err := buildSelectAllQuery(spec, orderBy, ascending, r.db.Dialect().Placeholder())
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	var docs []json.RawMessage
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		docs = append(docs, json.RawMessage(doc))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", table, err)
	}

	return docs, nil
}

func (r *tableRepository) Get(ctx context.Context, table, id string) (json.RawMessage, error) {
	spec, ok := LookupTable(table)
	if !ok {
		return nil, ErrTableUnknown
	}

	query, args, err := buildSelectOneQuery(spec, id, r.db.Dialect().Placeholder())
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var doc []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", table, id, err)
	}

	return json.RawMessage(doc), nil
}

func (r *tableRepository) Insert(ctx context.Context, table string, row json.RawMessage) error {
	spec, ok := LookupTable(table)
	if !ok {
		return ErrTableUnknown
	}

	id, fields, err := parseRow(row)
	if err != nil {
		return err
	}

	query, args, err := buildInsertQuery(spec, id, sortKeyOf(spec, fields), row, r.db.Dialect().Placeholder())
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrRowExists
		}
		return fmt.Errorf("insert into %s: %w", table, err)
	}

	return nil
}

func (r *tableRepository) Update(ctx context.Context, table, id string, patch json.RawMessage) error {
	spec, ok := LookupTable(table)
	if !ok {
		return ErrTableUnknown
	}

	var patchFields map[string]json.RawMessage
	if err := json.Unmarshal(patch, &patchFields); err != nil {
		return ErrRowMalformed
	}

	current, err := r.Get(ctx, table, id)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err = json.Unmarshal(current, &fields); err != nil {
		return fmt.Errorf("stored %s/%s document is malformed: %w", table, id, err)
	}

	for key, value := range patchFields {
		fields[key] = value
	}
	// patches never move a row to a new id
	fields["id"], _ = json.Marshal(id)

	merged, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("merge %s/%s document: %w", table, id, err)
	}

	query, args, err := buildUpdateQuery(spec, id, sortKeyOf(spec, fields), merged, r.db.Dialect().Placeholder())
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", table, id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRowNotFound
	}

	return nil
}

func (r *tableRepository) Upsert(ctx context.Context, table string, row json.RawMessage) error {
	spec, ok := LookupTable(table)
	if !ok {
		return ErrTableUnknown
	}

	id, fields, err := parseRow(row)
	if err != nil {
		return err
	}

	query, args, err := buildUpsertQuery(spec, id, sortKeyOf(spec, fields), row, r.db.Dialect().Placeholder())
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert into %s: %w", table, err)
	}

	return nil
}

func (r *tableRepository) Delete(ctx context.Context, table, id string) error {
	spec, ok := LookupTable(table)
	if !ok {
		return ErrTableUnknown
	}

	query, args, err := buildDeleteQuery(spec, id, r.db.Dialect().Placeholder())
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", table, id, err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRowNotFound
	}

	return nil
}

func (r *tableRepository) DeleteAll(ctx context.Context, table string) error {
	spec, ok := LookupTable(table)
	if !ok {
		return ErrTableUnknown
	}

	query, args, err := buildDeleteAllQuery(spec, r.db.Dialect().Placeholder())
	if err != nil {
		return fmt.Errorf("build delete-all query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete all %s: %w", table, err)
	}

	return nil
}

// parseRow validates that the document is a JSON object with a non-empty
// string id and returns both.
func parseRow(row json.RawMessage) (string, map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(row, &fields); err != nil {
		return "", nil, ErrRowMalformed
	}

	var id string
	if raw, ok := fields["id"]; ok {
		_ = json.Unmarshal(raw, &id)
	}
	if strings.TrimSpace(id) == "" {
		return "", nil, ErrRowMissingID
	}

	return id, fields, nil
}

// sortKeyOf extracts the table's sort field from the document as plain text.
// Non-string values keep their raw JSON form, which still orders usably for
// numbers of equal width.
func sortKeyOf(spec TableSpec, fields map[string]json.RawMessage) string {
	if spec.SortField == "" {
		return ""
	}
	raw, ok := fields[spec.SortField]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
