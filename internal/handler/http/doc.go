// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

// Package http implements the REST transport of the portal backend.
//
// It exposes generic row storage under /api/data/{table}, console
// authentication under /api/auth, file storage under /api/storage and
// static file serving under /files. Tracing, logging, compression and
// authentication concerns are handled by middleware before requests reach
// the storage layer.
package http
