// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

// Package service holds the portal's client-side services: the shared
// application state store and the verification engine built on top of it.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/vndocs/govportal/internal/adapter"
	"github.com/vndocs/govportal/internal/device"
	"github.com/vndocs/govportal/internal/geoip"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/models"
)

// settingsRow is the wire shape of the single settings table row.
type settingsRow struct {
	ID     string           `json:"id"`
	Config models.AppConfig `json:"config"`
}

// AppState is the single in-memory owner of every server-backed collection
// for one portal session. All reads on the portal go through it; every
// mutation performs exactly one remote write and then re-fetches the whole
// dataset, so the visible state is always post-refresh backend state.
//
// Safe for concurrent use; the background refresh worker and the UI loop
// share one instance.
type AppState struct {
	gateway adapter.Gateway
	geo     geoip.Resolver
	logger  *logger.Logger

	mu           sync.RWMutex
	config       models.AppConfig
	applications []models.Application
	records      []models.OfficialRecord
	infoEntries  []models.InfoEntry
	auditLogs    []models.AuditLog
	devices      []models.DeviceInfo
	rules        []models.Rule
}

// NewAppState builds the store. The configuration starts as
// [models.DefaultConfig] until the first successful settings fetch.
func NewAppState(gateway adapter.Gateway, geo geoip.Resolver, logger *logger.Logger) *AppState {
	return &AppState{
		gateway: gateway,
		geo:     geo,
		logger:  logger,
		config:  models.DefaultConfig(),
	}
}

// RefreshAllData fetches every collection and the settings singleton and
// replaces the in-memory state wholesale. Each individual fetch failure is
// logged and swallowed, leaving that collection as previously loaded; there
// is no rollback of collections fetched successfully in the same call.
// Safe to call repeatedly.
func (s *AppState) RefreshAllData(ctx context.Context) {
	if apps, err := fetchAll[models.Application](ctx, s.gateway, "applications", "submission_date", false); err != nil {
		s.logger.Warn().Err(err).Msg("refresh applications failed, keeping previous data")
	} else {
		s.mu.Lock()
		s.applications = apps
		s.mu.Unlock()
	}

	if records, err := fetchAll[models.OfficialRecord](ctx, s.gateway, "records", "id", false); err != nil {
		s.logger.Warn().Err(err).Msg("refresh records failed, keeping previous data")
	} else {
		for i := range records {
			records[i] = records[i].WithFallbacks()
		}
		s.mu.Lock()
		s.records = records
		s.mu.Unlock()
	}

	if entries, err := fetchAll[models.InfoEntry](ctx, s.gateway, "info_entries", "date", false); err != nil {
		s.logger.Warn().Err(err).Msg("refresh info entries failed, keeping previous data")
	} else {
		s.mu.Lock()
		s.infoEntries = entries
		s.mu.Unlock()
	}

	if logs, err := fetchAll[models.AuditLog](ctx, s.gateway, "logs", "timestamp", false); err != nil {
		s.logger.Warn().Err(err).Msg("refresh logs failed, keeping previous data")
	} else {
		s.mu.Lock()
		s.auditLogs = logs
		s.mu.Unlock()
	}

	if devices, err := fetchAll[models.DeviceInfo](ctx, s.gateway, "devices", "last_active", false); err != nil {
		s.logger.Warn().Err(err).Msg("refresh devices failed, keeping previous data")
	} else {
		s.mu.Lock()
		s.devices = devices
		s.mu.Unlock()
	}

	if rules, err := fetchAll[models.Rule](ctx, s.gateway, "rules", "", false); err != nil {
		s.logger.Warn().Err(err).Msg("refresh rules failed, keeping previous data")
	} else {
		s.mu.Lock()
		s.rules = rules
		s.mu.Unlock()
	}

	s.refreshConfig(ctx)
}

func (s *AppState) refreshConfig(ctx context.Context) {
	raw, err := s.gateway.GetOne(ctx, models.AppConfig{}.TableName(), models.SettingsKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("refresh settings failed, keeping previous config")
		return
	}

	var row settingsRow
	if err = json.Unmarshal(raw, &row); err != nil {
		s.logger.Warn().Err(err).Msg("settings row is malformed, keeping previous config")
		return
	}

	s.mu.Lock()
	s.config = row.Config
	s.mu.Unlock()
}

// fetchAll lists a table and decodes every row into T.
func fetchAll[T any](ctx context.Context, gw adapter.Gateway, table, orderBy string, ascending bool) ([]T, error) {
	raw, err := gw.List(ctx, table, orderBy, ascending)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}

	out := make([]T, 0, len(raw))
	for _, row := range raw {
		var item T
		if err = json.Unmarshal(row, &item); err != nil {
			return nil, fmt.Errorf("decode %s row: %w", table, err)
		}
		out = append(out, item)
	}

	return out, nil
}

// Config returns the current site configuration.
func (s *AppState) Config() models.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Applications returns a copy of the loaded applications, newest first.
func (s *AppState) Applications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Application(nil), s.applications...)
}

// Records returns a copy of the loaded official records.
func (s *AppState) Records() []models.OfficialRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.OfficialRecord(nil), s.records...)
}

// InfoEntries returns a copy of the loaded info entries, newest first.
func (s *AppState) InfoEntries() []models.InfoEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InfoEntry(nil), s.infoEntries...)
}

// AuditLogs returns a copy of the loaded audit logs, newest first.
func (s *AppState) AuditLogs() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AuditLog(nil), s.auditLogs...)
}

// Devices returns a copy of the loaded devices, most recently active first.
func (s *AppState) Devices() []models.DeviceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DeviceInfo(nil), s.devices...)
}

// Rules returns a copy of the loaded rules.
func (s *AppState) Rules() []models.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Rule(nil), s.rules...)
}

// mutate runs one remote write and, only when it succeeds, re-fetches all
// collections. A failed write is returned to the caller untouched and
// triggers no refresh.
func (s *AppState) mutate(ctx context.Context, write func() error) error {
	if err := write(); err != nil {
		return err
	}
	s.RefreshAllData(ctx)
	return nil
}

// AddApplication persists a new application and refreshes.
func (s *AppState) AddApplication(ctx context.Context, app models.Application) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Insert(ctx, app.TableName(), app)
	})
}

// UpdateApplication applies a patch to one application and refreshes.
func (s *AppState) UpdateApplication(ctx context.Context, id string, patch any) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Update(ctx, models.Application{}.TableName(), id, patch)
	})
}

// DeleteApplication removes one application and refreshes.
func (s *AppState) DeleteApplication(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Delete(ctx, models.Application{}.TableName(), id)
	})
}

// AddRecord persists a new official record and refreshes.
func (s *AppState) AddRecord(ctx context.Context, rec models.OfficialRecord) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Insert(ctx, rec.TableName(), rec)
	})
}

// UpdateRecord replaces an official record wholesale and refreshes. The
// console edits records as full rows, not patches.
func (s *AppState) UpdateRecord(ctx context.Context, rec models.OfficialRecord) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Upsert(ctx, rec.TableName(), rec)
	})
}

// DeleteRecord removes one official record and refreshes.
func (s *AppState) DeleteRecord(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Delete(ctx, models.OfficialRecord{}.TableName(), id)
	})
}

// HasRecord reports whether a record with the given id is currently loaded.
// The console uses it to choose between insert and update at intake time;
// the check is purely client-side.
func (s *AppState) HasRecord(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id {
			return true
		}
	}
	return false
}

// AddInfoEntry persists a new info entry and refreshes.
func (s *AppState) AddInfoEntry(ctx context.Context, entry models.InfoEntry) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Insert(ctx, entry.TableName(), entry)
	})
}

// UpdateInfoEntry applies a patch to one info entry and refreshes.
func (s *AppState) UpdateInfoEntry(ctx context.Context, id string, patch any) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Update(ctx, models.InfoEntry{}.TableName(), id, patch)
	})
}

// DeleteInfoEntry removes one info entry and refreshes.
func (s *AppState) DeleteInfoEntry(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Delete(ctx, models.InfoEntry{}.TableName(), id)
	})
}

// AddRule persists a new rule and refreshes.
func (s *AppState) AddRule(ctx context.Context, rule models.Rule) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Insert(ctx, rule.TableName(), rule)
	})
}

// DeleteRule removes one rule and refreshes.
func (s *AppState) DeleteRule(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Delete(ctx, models.Rule{}.TableName(), id)
	})
}

// UpdateDevice applies a patch to one device row and refreshes. Used by the
// console to toggle the Active/Blocked status.
func (s *AppState) UpdateDevice(ctx context.Context, id string, patch any) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Update(ctx, models.DeviceInfo{}.TableName(), id, patch)
	})
}

// DeleteDevice removes one device row and refreshes.
func (s *AppState) DeleteDevice(ctx context.Context, id string) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Delete(ctx, models.DeviceInfo{}.TableName(), id)
	})
}

// UpdateConfig replaces the settings singleton wholesale and refreshes.
// There are no partial patch semantics for configuration.
func (s *AppState) UpdateConfig(ctx context.Context, cfg models.AppConfig) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Upsert(ctx, cfg.TableName(), settingsRow{ID: models.SettingsKey, Config: cfg})
	})
}

// AddAuditLog appends a console audit entry and refreshes.
func (s *AppState) AddAuditLog(ctx context.Context, entry models.AuditLog) error {
	return s.mutate(ctx, func() error {
		return s.gateway.Insert(ctx, entry.TableName(), entry)
	})
}

// wipeTables lists the tables cleared by WipeAllData; the settings
// singleton survives a wipe.
var wipeTables = []string{
	"applications", "records", "info_entries", "logs", "devices", "rules",
}

// WipeAllData bulk-deletes every collection, best effort. Each table delete
// is attempted independently; failures are logged and skipped, so a partial
// wipe leaves the store inconsistent with the backend until the next
// refresh. Returns the number of tables that failed.
func (s *AppState) WipeAllData(ctx context.Context) int {
	failed := 0
	for _, table := range wipeTables {
		if err := s.gateway.DeleteAll(ctx, table); err != nil {
			s.logger.Error().Err(err).Str("table", table).Msg("wipe table failed")
			failed++
		}
	}
	s.RefreshAllData(ctx)
	return failed
}

// RegisterCurrentDevice fingerprints the running session and upserts its
// device row: the public IP and location are resolved best-effort (every
// field degrades to "Unknown" on lookup failure), the device id is derived
// deterministically from the IP, and an existing row keeps its original
// LoginTime and Status. Returns nil on any failure; device tracking never
// blocks a login.
func (s *AppState) RegisterCurrentDevice(ctx context.Context) *models.DeviceInfo {
	loc, err := s.geo.Locate(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("geolocation unavailable, registering device as unknown")
		loc = geoip.Location{
			IP: geoip.Unknown, Country: geoip.Unknown,
			City: geoip.Unknown, Region: geoip.Unknown,
		}
	}

	fp := device.Classify(loc.IP, "")
	now := time.Now().UTC()

	info := models.DeviceInfo{
		ID:         fp.ID,
		IP:         loc.IP,
		Device:     fp.Device,
		Browser:    fp.Browser,
		OS:         fp.OS,
		Country:    loc.Country,
		City:       loc.City,
		Region:     loc.Region,
		Status:     models.DeviceActive,
		LoginTime:  now,
		LastActive: now,
	}

	if existing := s.findDevice(ctx, fp.ID); existing != nil {
		info.Status = existing.Status
		info.LoginTime = existing.LoginTime
	}

	if err = s.gateway.Upsert(ctx, info.TableName(), info); err != nil {
		s.logger.Warn().Err(err).Str("device_id", info.ID).Msg("device upsert failed")
		return nil
	}

	s.RefreshAllData(ctx)
	return &info
}

// CheckDeviceStatus looks up the device row for an IP address. Returns nil
// when no row exists or the lookup fails; callers treat nil as "not yet
// registered".
func (s *AppState) CheckDeviceStatus(ctx context.Context, ip string) *models.DeviceInfo {
	return s.findDevice(ctx, device.ID(ip))
}

func (s *AppState) findDevice(ctx context.Context, id string) *models.DeviceInfo {
	s.mu.RLock()
	for i := range s.devices {
		if s.devices[i].ID == id {
			found := s.devices[i]
			s.mu.RUnlock()
			return &found
		}
	}
	s.mu.RUnlock()

	raw, err := s.gateway.GetOne(ctx, models.DeviceInfo{}.TableName(), id)
	if err != nil {
		return nil
	}

	var info models.DeviceInfo
	if err = json.Unmarshal(raw, &info); err != nil {
		s.logger.Warn().Err(err).Str("device_id", id).Msg("device row is malformed")
		return nil
	}

	return &info
}
