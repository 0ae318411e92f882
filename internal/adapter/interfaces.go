// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

// Package adapter provides the remote data gateway: a thin typed client for
// the hosted backend that every portal component persists through.
//
// The primary abstraction is [Gateway], which decouples the portal services
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPGateway]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/vndocs/govportal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// Gateway defines the operations the portal requires from the hosted
// backend: generic row CRUD over named tables, the settings singleton, file
// storage, and console login. Rows travel as raw JSON; callers decode into
// their model types.
type Gateway interface {
	// SetToken stores the bearer token attached to all subsequent
	// privileged requests. Called after a successful console Login.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Login authenticates a console session. On success the bearer token
	// from the Authorization response header is stored via SetToken.
	Login(ctx context.Context, username, password string) (models.Token, error)

	// List fetches every row of table ordered by orderBy (backend column;
	// empty means the table's default ordering) in the given direction.
	List(ctx context.Context, table, orderBy string, ascending bool) ([]json.RawMessage, error)

	// GetOne fetches a single row by id. Returns [ErrNotFound] (wrapped)
	// when the row does not exist.
	GetOne(ctx context.Context, table, id string) (json.RawMessage, error)

	// Insert creates one row.
	Insert(ctx context.Context, table string, row any) error

	// Update applies a shallow JSON merge patch to the row with the given
	// id.
	Update(ctx context.Context, table, id string, patch any) error

	// Upsert creates the row or replaces an existing row with the same id.
	Upsert(ctx context.Context, table string, row any) error

	// Delete removes a single row by id.
	Delete(ctx context.Context, table, id string) error

	// DeleteAll removes every row of a table. Requires a console token.
	DeleteAll(ctx context.Context, table string) error

	// UploadFile stores blob under a name inside bucket and returns the
	// public URL it is served at. Requires a console token.
	UploadFile(ctx context.Context, bucket, name string, blob []byte) (string, error)

	// RemoveFile deletes a stored object by its bucket-relative path.
	// Requires a console token.
	RemoveFile(ctx context.Context, bucket, path string) error
}
