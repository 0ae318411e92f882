package models

// ApplicationDetails is the type-specific portion of an application. Exactly
// one of the three pointers is set, matching the application's Type. Keeping
// each variant strongly typed rules out "wrong field for this document type"
// mistakes that an open key/value bag would allow.
type ApplicationDetails struct {
	WorkPermit *WorkPermitDetails `json:"work_permit,omitempty"`
	Visa       *VisaDetails       `json:"visa,omitempty"`
	TRC        *TRCDetails        `json:"trc,omitempty"`
}

// WorkPermitDetails holds the fields collected only by the work permit
// wizard.
type WorkPermitDetails struct {
	// Employer is the sponsoring company name.
	Employer string `json:"employer"`

	// JobTitle is the position the permit is requested for.
	JobTitle string `json:"job_title"`
}

// VisaDetails holds the fields collected only by the visa wizard.
type VisaDetails struct {
	// VisaType is the visa class (DL, DN1, LD2, ...).
	VisaType string `json:"visa_type"`

	// EntryType is "Single" or "Multiple".
	EntryType string `json:"entry_type"`

	// Duration is the requested validity, e.g. "90 days".
	Duration string `json:"duration"`
}

// TRCDetails holds the fields collected only by the temporary residence
// card wizard.
type TRCDetails struct {
	// SponsorName is the sponsoring organisation or relative.
	SponsorName string `json:"sponsor_name"`

	// LicenseNumber is the sponsor's business license number.
	LicenseNumber string `json:"license_number"`

	// Duration is the requested card validity, e.g. "2 years".
	Duration string `json:"duration"`
}
