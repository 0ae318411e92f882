// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package service

import (
	"context"
	"strings"
	"time"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/models"
)

// verifyDelay is the fixed pause before a result is produced. The lookup
// itself is in-memory; the pause exists so the check reads as a registry
// query rather than an instant local answer.
const verifyDelay = 1500 * time.Millisecond

// Verifier classifies a (document type, passport number, optional email)
// query against the collections already loaded in the store. It performs no
// remote calls and never writes anything.
type Verifier struct {
	store  *AppState
	delay  time.Duration
	logger *logger.Logger
}

// NewVerifier builds a verification engine over the shared store.
func NewVerifier(store *AppState, logger *logger.Logger) *Verifier {
	return &Verifier{store: store, delay: verifyDelay, logger: logger}
}

// Verify runs one lookup. The passport is compared case-insensitively;
// official records always take precedence over submitted applications, and
// within each collection the first match in load order wins. An optional
// email narrows the application pass only.
//
// Not-found is a normal result variant with the NOT_FOUND sentinel id; the
// ERROR sentinel appears only for unusable queries and cancelled contexts.
// The Message field is localized for lang.
func (v *Verifier) Verify(ctx context.Context, lang i18n.Lang, passport, email string, docType models.DocumentType) models.VerificationResult {
	passport = strings.ToUpper(strings.TrimSpace(passport))
	email = strings.ToLower(strings.TrimSpace(email))

	if passport == "" || !docType.Valid() {
		return errorResult(lang)
	}

	select {
	case <-time.After(v.delay):
	case <-ctx.Done():
		v.logger.Warn().Err(ctx.Err()).Msg("verification cancelled")
		return errorResult(lang)
	}

	for _, rec := range v.store.Records() {
		if !strings.EqualFold(rec.PassportNumber, passport) || rec.Type != docType {
			continue
		}
		return recordResult(lang, rec.WithFallbacks())
	}

	for _, app := range v.store.Applications() {
		if !strings.EqualFold(app.PassportNumber, passport) || app.Type != docType {
			continue
		}
		if email != "" && !strings.EqualFold(app.Email, email) {
			continue
		}
		return applicationResult(lang, app)
	}

	return models.VerificationResult{
		Status:     models.VerificationInvalid,
		DocumentID: models.DocumentNotFound,
		Message:    i18n.T(lang, "verify.notfound"),
	}
}

func recordResult(lang i18n.Lang, rec models.OfficialRecord) models.VerificationResult {
	result := models.VerificationResult{
		DocumentID: rec.ID,
		HolderName: rec.FullName,
		IssueDate:  rec.IssueDate,
		ExpiryDate: rec.ExpiryDate,
	}

	if rec.Status == models.RecordVerified {
		result.Status = models.VerificationValid
		result.Message = i18n.Tf(lang, "verify.valid", rec.ID, rec.Authority, rec.Company)
	} else {
		result.Status = models.VerificationExpired
		result.Message = i18n.Tf(lang, "verify.expired", rec.ID, rec.Status)
	}

	return result
}

func applicationResult(lang i18n.Lang, app models.Application) models.VerificationResult {
	return models.VerificationResult{
		Status:         models.VerificationPending,
		DocumentID:     app.ID,
		HolderName:     app.FullName,
		SubmissionDate: app.SubmissionDate.Format("2006-01-02"),
		Message:        i18n.Tf(lang, "verify.pending", app.ID, app.Status, app.PaymentStatus),
	}
}

func errorResult(lang i18n.Lang) models.VerificationResult {
	return models.VerificationResult{
		Status:     models.VerificationInvalid,
		DocumentID: models.DocumentError,
		Message:    i18n.T(lang, "verify.error"),
	}
}
