package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/utils"
)

// maxUploadSize caps a single stored document at 16 MiB.
const maxUploadSize = 16 << 20

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bucket := chi.URLParam(r, "bucket")
	name := r.URL.Query().Get("name")
	if name == "" {
		log.Error().Str("bucket", bucket).Msg("missing `name` query parameter")
		http.Error(w, "missing `name` query parameter", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		log.Err(err).Str("bucket", bucket).Msg("error reading upload body")
		http.Error(w, "error reading upload body", http.StatusBadRequest)
		return
	}

	url, err := h.storages.Files.Save(r.Context(), bucket, name, data)
	if err != nil {
		log.Err(err).Str("bucket", bucket).Str("name", name).Msg("error storing file")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, map[string]string{"url": url}, http.StatusCreated)
}

func (h *Handler) removeFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bucket := chi.URLParam(r, "bucket")
	path := chi.URLParam(r, "*")

	if err := h.storages.Files.Remove(r.Context(), bucket, path); err != nil {
		log.Err(err).Str("bucket", bucket).Str("path", path).Msg("error removing file")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
