// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package models

// RecordStatus is the authority-assigned state of an official record.
type RecordStatus string

const (
	RecordVerified   RecordStatus = "Verified"
	RecordExpired    RecordStatus = "Expired"
	RecordRevoked    RecordStatus = "Revoked"
	RecordProcessing RecordStatus = "Processing"
	RecordRejected   RecordStatus = "Rejected"
)

// Fallback literals substituted for missing record fields when rows come
// back from the backend with nulls.
const (
	FallbackName   = "UNNAMED"
	FallbackNA     = "N/A"
	FallbackStatus = RecordVerified
)

// OfficialRecord is an authoritative, pre-verified document entry maintained
// by administrators. It is ground truth for verification lookups: the pair
// (PassportNumber, Type) is the natural lookup key, although uniqueness is
// not enforced anywhere, so the first match in collection order wins.
type OfficialRecord struct {
	// ID is the record identifier assigned at intake.
	ID string `json:"id"`

	// FullName is the document holder's name.
	FullName string `json:"full_name"`

	// PassportNumber is the holder's passport number; compared
	// case-insensitively during verification.
	PassportNumber string `json:"passport_number"`

	// Nationality is the holder's citizenship.
	Nationality string `json:"nationality"`

	// DateOfBirth is a plain date string.
	DateOfBirth string `json:"date_of_birth"`

	// Type is the document type this record certifies.
	Type DocumentType `json:"type"`

	// Status drives the verification result: "Verified" yields a valid
	// outcome, every other status yields expired.
	Status RecordStatus `json:"status"`

	// IssueDate and ExpiryDate are plain date strings.
	IssueDate  string `json:"issue_date"`
	ExpiryDate string `json:"expiry_date"`

	// Company is the sponsoring employer or organisation.
	Company string `json:"company"`

	// JobTitle is the certified position, when applicable.
	JobTitle string `json:"job_title"`

	// FileURL points at the uploaded artifact backing this record, if any.
	FileURL string `json:"file_url,omitempty"`

	// Authority is a free-form reference to the issuing authority.
	Authority string `json:"authority"`
}

// TableName returns the backend table holding official records.
func (OfficialRecord) TableName() string {
	return "records"
}

// WithFallbacks returns a copy of the record with every empty display field
// replaced by its defined fallback literal. Rows created outside the console
// occasionally arrive with null columns; the rest of the portal relies on
// these literals instead of empty strings.
func (r OfficialRecord) WithFallbacks() OfficialRecord {
	if r.FullName == "" {
		r.FullName = FallbackName
	}
	if r.Nationality == "" {
		r.Nationality = FallbackNA
	}
	if r.Company == "" {
		r.Company = FallbackNA
	}
	if r.JobTitle == "" {
		r.JobTitle = FallbackNA
	}
	if r.Authority == "" {
		r.Authority = FallbackNA
	}
	if r.Status == "" {
		r.Status = FallbackStatus
	}
	return r
}
