// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/vndocs/govportal/internal/config"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/utils"
	"github.com/vndocs/govportal/models"
)

type httpGateway struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPGateway constructs an HTTP/REST implementation of [Gateway].
// It normalises and validates the base URL from gatewayCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if gatewayCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPGateway(gatewayCfg config.PortalGateway, logger *logger.Logger) (Gateway, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(gatewayCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(gatewayCfg.RequestTimeout)

	return &httpGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [Gateway]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent privileged requests.
func (h *httpGateway) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [Gateway].
func (h *httpGateway) Token() string {
	return h.token
}

// Login implements [Gateway]. It POSTs the console credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpGateway) Login(ctx context.Context, username, password string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, Username: username}, nil
}

// List implements [Gateway]. It GETs /api/data/{table} with optional
// order_by/ascending query parameters and decodes the response into a slice
// of raw rows.
func (h *httpGateway) List(ctx context.Context, table, orderBy string, ascending bool) ([]json.RawMessage, error) {
	req := h.client.R().SetContext(ctx)
	if orderBy != "" {
		req.SetQueryParam("order_by", orderBy)
		req.SetQueryParam("ascending", strconv.FormatBool(ascending))
	}

	resp, err := req.Get("/api/data/" + url.PathEscape(table))
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", table, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode list %s response: %w", table, err)
	}

	return rows, nil
}

// GetOne implements [Gateway]. It GETs /api/data/{table}/{id}. A 404 is
// returned as a wrapped [ErrNotFound].
func (h *httpGateway) GetOne(ctx context.Context, table, id string) (json.RawMessage, error) {
	resp, err := h.client.R().SetContext(ctx).
		Get("/api/data/" + url.PathEscape(table) + "/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("get %s/%s request: %w", table, id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// Insert implements [Gateway]. It POSTs the row to /api/data/{table}.
func (h *httpGateway) Insert(ctx context.Context, table string, row any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(row).
		Post("/api/data/" + url.PathEscape(table))
	if err != nil {
		return fmt.Errorf("insert into %s request: %w", table, err)
	}

	return mapHTTPError(resp)
}

// Update implements [Gateway]. It PATCHes /api/data/{table}/{id} with a
// shallow merge patch body.
func (h *httpGateway) Update(ctx context.Context, table, id string, patch any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		Patch("/api/data/" + url.PathEscape(table) + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("update %s/%s request: %w", table, id, err)
	}

	return mapHTTPError(resp)
}

// Upsert implements [Gateway]. It PUTs the full row to /api/data/{table}.
func (h *httpGateway) Upsert(ctx context.Context, table string, row any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(row).
		Put("/api/data/" + url.PathEscape(table))
	if err != nil {
		return fmt.Errorf("upsert into %s request: %w", table, err)
	}

	return mapHTTPError(resp)
}

// Delete implements [Gateway]. It DELETEs /api/data/{table}/{id}.
func (h *httpGateway) Delete(ctx context.Context, table, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/data/" + url.PathEscape(table) + "/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete %s/%s request: %w", table, id, err)
	}

	return mapHTTPError(resp)
}

// DeleteAll implements [Gateway]. It DELETEs /api/data/{table}. Requires a
// console token; the backend refuses the call otherwise.
func (h *httpGateway) DeleteAll(ctx context.Context, table string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/data/" + url.PathEscape(table))
	if err != nil {
		return fmt.Errorf("delete all %s request: %w", table, err)
	}

	return mapHTTPError(resp)
}

// UploadFile implements [Gateway]. It POSTs the raw blob to
// /api/storage/{bucket}?name={name} and returns the public URL from the
// response body.
func (h *httpGateway) UploadFile(ctx context.Context, bucket, name string, blob []byte) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetQueryParam("name", name).
		SetBody(blob).
		Post("/api/storage/" + url.PathEscape(bucket))
	if err != nil {
		return "", fmt.Errorf("upload to %s request: %w", bucket, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var out struct {
		URL string `json:"url"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}

	return out.URL, nil
}

// RemoveFile implements [Gateway]. It DELETEs
// /api/storage/{bucket}/{path}. A missing object is reported as a wrapped
// [ErrNotFound]; callers doing best-effort cleanup may ignore it.
func (h *httpGateway) RemoveFile(ctx context.Context, bucket, path string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/storage/" + url.PathEscape(bucket) + "/" + url.PathEscape(path))
	if err != nil {
		return fmt.Errorf("remove file %s/%s request: %w", bucket, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpGateway) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
