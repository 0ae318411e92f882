// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/utils"
)

func (h *Handler) listRows(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	orderBy := r.URL.Query().Get("order_by")
	ascending, _ := strconv.ParseBool(r.URL.Query().Get("ascending"))

	rows, err := h.storages.Tables.List(r.Context(), table, orderBy, ascending)
	if err != nil {
		log.Err(err).Str("table", table).Msg("error listing rows")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if rows == nil {
		rows = []json.RawMessage{}
	}
	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) getRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	id := chi.URLParam(r, "id")

	row, err := h.storages.Tables.Get(r.Context(), table, id)
	if err != nil {
		log.Err(err).Str("table", table).Str("id", id).Msg("error getting row")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(row)
}

func (h *Handler) insertRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	row, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	if err := h.storages.Tables.Insert(r.Context(), table, row); err != nil {
		log.Err(err).Str("table", table).Msg("error inserting row")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	id := chi.URLParam(r, "id")
	patch, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	if err := h.storages.Tables.Update(r.Context(), table, id, patch); err != nil {
		log.Err(err).Str("table", table).Str("id", id).Msg("error updating row")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) upsertRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	row, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	if err := h.storages.Tables.Upsert(r.Context(), table, row); err != nil {
		log.Err(err).Str("table", table).Msg("error upserting row")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	id := chi.URLParam(r, "id")

	if err := h.storages.Tables.Delete(r.Context(), table, id); err != nil {
		log.Err(err).Str("table", table).Str("id", id).Msg("error deleting row")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteAllRows(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	table := chi.URLParam(r, "table")
	username, _ := utils.GetUsernameFromContext(r.Context())

	if err := h.storages.Tables.DeleteAll(r.Context(), table); err != nil {
		log.Err(err).Str("table", table).Msg("error deleting all rows")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Info().Str("table", table).Str("username", username).Msg("table wiped")

	w.WriteHeader(http.StatusOK)
}
