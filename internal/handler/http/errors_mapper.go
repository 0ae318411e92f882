package http

import (
	"errors"
	"net/http"

	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,

	store.ErrTableUnknown:  http.StatusBadRequest,
	store.ErrRowNotFound:   http.StatusNotFound,
	store.ErrRowExists:     http.StatusConflict,
	store.ErrRowMissingID:  http.StatusBadRequest,
	store.ErrRowMalformed:  http.StatusBadRequest,
	store.ErrBucketInvalid: http.StatusBadRequest,
	store.ErrFileNotFound:  http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
