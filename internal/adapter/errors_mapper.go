package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// statusSentinels maps the client-error statuses the backend emits onto the
// package sentinels. Every 5xx collapses into [ErrServerUnavailable].
var statusSentinels = map[int]error{
	http.StatusBadRequest:   ErrInvalidRequest,
	http.StatusUnauthorized: ErrUnauthorized,
	http.StatusForbidden:    ErrUnauthorized,
	http.StatusNotFound:     ErrNotFound,
	http.StatusConflict:     ErrConflict,
}

// mapHTTPError converts an error response into a wrapped sentinel carrying
// the response body (or the standard status text when the body is empty).
// Non-error responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	detail := string(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusSentinels[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, resp.StatusCode(), detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}
