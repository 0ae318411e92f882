package models

// VerificationStatus classifies the outcome of a document lookup.
type VerificationStatus string

const (
	// VerificationValid means an official record with status Verified
	// matched the query.
	VerificationValid VerificationStatus = "valid"

	// VerificationExpired means an official record matched but its status
	// is anything other than Verified.
	VerificationExpired VerificationStatus = "expired"

	// VerificationPending means no official record matched but a submitted
	// application did.
	VerificationPending VerificationStatus = "pending"

	// VerificationInvalid means nothing matched, or the lookup failed.
	VerificationInvalid VerificationStatus = "invalid"
)

// Sentinel document ids used for the two non-match outcomes.
const (
	DocumentNotFound = "NOT_FOUND"
	DocumentError    = "ERROR"
)

// VerificationResult is what the verification engine hands back to the UI.
// It is a plain value; not-found is a normal result variant, never an error.
type VerificationResult struct {
	Status VerificationStatus `json:"status"`

	// DocumentID is the matched record or application id, or one of the
	// sentinels above.
	DocumentID string `json:"document_id"`

	// HolderName is the matched owner's name, when known.
	HolderName string `json:"holder_name,omitempty"`

	// IssueDate/ExpiryDate are populated from an official record match;
	// SubmissionDate from an application match.
	IssueDate      string `json:"issue_date,omitempty"`
	ExpiryDate     string `json:"expiry_date,omitempty"`
	SubmissionDate string `json:"submission_date,omitempty"`

	// Message is a localized, display-ready summary of the outcome.
	Message string `json:"message"`
}
