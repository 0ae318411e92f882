// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the lifecycle state of a submitted application.
// The back office may set any status at any time; no transition order is
// enforced by the system.
type ApplicationStatus string

const (
	StatusSubmitted        ApplicationStatus = "Submitted"
	StatusPaymentPending   ApplicationStatus = "Payment Pending"
	StatusPaymentConfirmed ApplicationStatus = "Payment Confirmed"
	StatusUnderReview      ApplicationStatus = "Under Review"
	StatusApproved         ApplicationStatus = "Approved"
	StatusRejected         ApplicationStatus = "Rejected"
	StatusExpired          ApplicationStatus = "Expired"
)

// PaymentStatus tracks settlement of the service fee.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// HistoryEntry is a single append-only audit line on an application.
type HistoryEntry struct {
	// Timestamp is the moment the action happened, UTC.
	Timestamp time.Time `json:"timestamp"`

	// Action is a short human-readable description of what happened.
	Action string `json:"action"`

	// Actor identifies who performed the action ("applicant", "admin").
	Actor string `json:"actor"`

	// Notes holds optional free-form context for the action.
	Notes string `json:"notes,omitempty"`
}

// Application is a citizen-submitted request for one of the three document
// types. It is created by the application wizard on final submission and
// afterwards mutated only by the management console.
type Application struct {
	// ID is the generated identifier of the form VN-<type>-<suffix>.
	// Never reused.
	ID string `json:"id"`

	// Type is the requested document type.
	Type DocumentType `json:"type"`

	// FullName is the applicant's full name as printed in the passport.
	FullName string `json:"full_name"`

	// PassportNumber is the applicant's passport number. Stored as entered;
	// all lookups compare it case-insensitively.
	PassportNumber string `json:"passport_number"`

	// Nationality is the applicant's citizenship.
	Nationality string `json:"nationality"`

	// DateOfBirth is stored as a plain date string (no time component).
	DateOfBirth string `json:"date_of_birth"`

	// Gender is the applicant's declared gender.
	Gender string `json:"gender"`

	// Email is the contact email. Used as a secondary verification key for
	// pending applications.
	Email string `json:"email"`

	// Phone is the contact phone number.
	Phone string `json:"phone"`

	// CurrentAddress is the applicant's address abroad.
	CurrentAddress string `json:"current_address"`

	// VietnamAddress is the applicant's local address in Vietnam.
	VietnamAddress string `json:"vietnam_address"`

	// Details carries the type-specific field set (employer for work
	// permits, visa class for visas, sponsor for TRCs).
	Details ApplicationDetails `json:"details"`

	// PassportScanURL, PhotoURL, SupportingDocURLs and PaymentProofURL are
	// opaque locators of uploaded artifacts. The public wizard keeps local
	// handles only; durable URLs appear once the console re-uploads files.
	PassportScanURL   string   `json:"passport_scan_url,omitempty"`
	PhotoURL          string   `json:"photo_url,omitempty"`
	SupportingDocURLs []string `json:"supporting_doc_urls,omitempty"`
	PaymentProofURL   string   `json:"payment_proof_url,omitempty"`

	// SubmissionDate is set once at creation and never changes.
	SubmissionDate time.Time `json:"submission_date"`

	// Status is the current lifecycle state.
	Status ApplicationStatus `json:"status"`

	// PaymentStatus is the current fee settlement state.
	PaymentStatus PaymentStatus `json:"payment_status"`

	// Fee is the service fee copied from the site configuration at
	// submission time, in VND.
	Fee decimal.Decimal `json:"fee"`

	// History is the append-only log of actions taken on this application.
	History []HistoryEntry `json:"history"`
}

// TableName returns the backend table holding applications.
func (Application) TableName() string {
	return "applications"
}

// AppendHistory returns a copy of the application with one more history
// entry. The receiver is not modified.
func (a Application) AppendHistory(entry HistoryEntry) Application {
	a.History = append(append([]HistoryEntry(nil), a.History...), entry)
	return a
}
