package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/models"
)

func newTestVerifier(records []models.OfficialRecord, apps []models.Application) *Verifier {
	store := NewAppState(nil, nil, logger.Nop())
	store.records = records
	store.applications = apps

	v := NewVerifier(store, logger.Nop())
	v.delay = 0
	return v
}

func TestVerifier_OfficialRecordTakesPrecedence(t *testing.T) {
	v := newTestVerifier(
		[]models.OfficialRecord{{
			ID: "REC-1", PassportNumber: "C1234567", Type: models.WorkPermit,
			Status: models.RecordVerified, FullName: "Nguyen Van A",
			IssueDate: "2025-01-01", ExpiryDate: "2027-01-01",
			Authority: "DOLISA Hanoi", Company: "FPT Software",
		}},
		[]models.Application{{
			ID: "VN-WP-000001", PassportNumber: "C1234567", Type: models.WorkPermit,
			Status: models.StatusSubmitted, PaymentStatus: models.PaymentPending,
		}},
	)

	res := v.Verify(context.Background(), i18n.EN, "C1234567", "", models.WorkPermit)
	assert.Equal(t, models.VerificationValid, res.Status)
	assert.Equal(t, "REC-1", res.DocumentID)
	assert.Equal(t, "Nguyen Van A", res.HolderName)
	assert.Equal(t, "2025-01-01", res.IssueDate)
	assert.Equal(t, "2027-01-01", res.ExpiryDate)
	assert.Equal(t, "Document REC-1 is valid. Issued by DOLISA Hanoi, sponsored by FPT Software.", res.Message)
}

func TestVerifier_FirstMatchWins(t *testing.T) {
	v := newTestVerifier([]models.OfficialRecord{
		{ID: "REC-1", PassportNumber: "C1234567", Type: models.Visa, Status: models.RecordExpired},
		{ID: "REC-2", PassportNumber: "C1234567", Type: models.Visa, Status: models.RecordVerified},
	}, nil)

	res := v.Verify(context.Background(), i18n.EN, "C1234567", "", models.Visa)
	assert.Equal(t, "REC-1", res.DocumentID)
	assert.Equal(t, models.VerificationExpired, res.Status)
}

func TestVerifier_NonVerifiedStatusesAreExpired(t *testing.T) {
	for _, status := range []models.RecordStatus{
		models.RecordExpired, models.RecordRevoked,
		models.RecordProcessing, models.RecordRejected,
	} {
		v := newTestVerifier([]models.OfficialRecord{
			{ID: "REC-1", PassportNumber: "C1", Type: models.TRC, Status: status},
		}, nil)

		res := v.Verify(context.Background(), i18n.EN, "C1", "", models.TRC)
		assert.Equal(t, models.VerificationExpired, res.Status, string(status))
		assert.Contains(t, res.Message, string(status))
	}
}

func TestVerifier_PassportIsCaseInsensitive(t *testing.T) {
	v := newTestVerifier([]models.OfficialRecord{
		{ID: "REC-1", PassportNumber: "c1234567x", Type: models.WorkPermit, Status: models.RecordVerified},
	}, nil)

	res := v.Verify(context.Background(), i18n.EN, "  C1234567x  ", "", models.WorkPermit)
	assert.Equal(t, models.VerificationValid, res.Status)
}

func TestVerifier_TypeMustMatch(t *testing.T) {
	v := newTestVerifier([]models.OfficialRecord{
		{ID: "REC-1", PassportNumber: "C1234567", Type: models.Visa, Status: models.RecordVerified},
	}, nil)

	res := v.Verify(context.Background(), i18n.EN, "C1234567", "", models.WorkPermit)
	assert.Equal(t, models.VerificationInvalid, res.Status)
	assert.Equal(t, models.DocumentNotFound, res.DocumentID)
}

func TestVerifier_PendingApplication(t *testing.T) {
	app := models.Application{
		ID: "VN-TRC-445566", PassportNumber: "C7654321", Type: models.TRC,
		FullName: "Tran Thi B", Email: "tran@example.com",
		Status: models.StatusUnderReview, PaymentStatus: models.PaymentPending,
		SubmissionDate: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("omitted email returns the match", func(t *testing.T) {
		v := newTestVerifier(nil, []models.Application{app})
		res := v.Verify(context.Background(), i18n.EN, "C7654321", "", models.TRC)
		require.Equal(t, models.VerificationPending, res.Status)
		assert.Equal(t, "VN-TRC-445566", res.DocumentID)
		assert.Equal(t, "2026-02-01", res.SubmissionDate)
		assert.Equal(t, "Application VN-TRC-445566 is being processed. Status: Under Review, payment: Pending.", res.Message)
	})

	t.Run("matching email returns the match", func(t *testing.T) {
		v := newTestVerifier(nil, []models.Application{app})
		res := v.Verify(context.Background(), i18n.EN, "C7654321", "  TRAN@Example.com ", models.TRC)
		assert.Equal(t, models.VerificationPending, res.Status)
	})

	t.Run("mismatched email excludes the match", func(t *testing.T) {
		v := newTestVerifier(nil, []models.Application{app})
		res := v.Verify(context.Background(), i18n.EN, "C7654321", "other@example.com", models.TRC)
		assert.Equal(t, models.VerificationInvalid, res.Status)
		assert.Equal(t, models.DocumentNotFound, res.DocumentID)
	})
}

func TestVerifier_NotFound(t *testing.T) {
	v := newTestVerifier(nil, nil)

	res := v.Verify(context.Background(), i18n.VI, "C0000000", "", models.Visa)
	assert.Equal(t, models.VerificationInvalid, res.Status)
	assert.Equal(t, models.DocumentNotFound, res.DocumentID)
	assert.Equal(t, i18n.T(i18n.VI, "verify.notfound"), res.Message)
}

func TestVerifier_ErrorSentinel(t *testing.T) {
	v := newTestVerifier(nil, nil)

	t.Run("blank passport", func(t *testing.T) {
		res := v.Verify(context.Background(), i18n.EN, "   ", "", models.Visa)
		assert.Equal(t, models.DocumentError, res.DocumentID)
	})

	t.Run("unknown document type", func(t *testing.T) {
		res := v.Verify(context.Background(), i18n.EN, "C1", "", models.DocumentType("PASSPORT"))
		assert.Equal(t, models.DocumentError, res.DocumentID)
	})

	t.Run("cancelled context", func(t *testing.T) {
		v := newTestVerifier(nil, nil)
		v.delay = time.Minute

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res := v.Verify(ctx, i18n.EN, "C1", "", models.Visa)
		assert.Equal(t, models.DocumentError, res.DocumentID)
		assert.Equal(t, models.VerificationInvalid, res.Status)
	})
}
