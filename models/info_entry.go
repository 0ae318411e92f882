package models

import "github.com/shopspring/decimal"

// InfoCategory classifies a published informational entry.
type InfoCategory string

const (
	InfoRules  InfoCategory = "Rules"
	InfoCost   InfoCategory = "Cost"
	InfoUpdate InfoCategory = "Update"
)

// InfoStatus controls visibility and ordering of an entry on public pages.
type InfoStatus string

const (
	InfoActive   InfoStatus = "Active"
	InfoPinned   InfoStatus = "Pinned"
	InfoInactive InfoStatus = "Inactive"
)

// InfoEntry is a published notice shown on the public information pages.
// Entries are purely informational and never referenced by applications.
type InfoEntry struct {
	ID          string       `json:"id"`
	Type        DocumentType `json:"type"`
	Category    InfoCategory `json:"category"`
	Status      InfoStatus   `json:"status"`
	Title       string       `json:"title"`
	Description string       `json:"description"`

	// Amount is the fee or cost the entry announces, when Category is Cost.
	Amount decimal.Decimal `json:"amount"`

	// Date is the publication date as a plain date string; public pages
	// list entries newest first.
	Date string `json:"date"`
}

// TableName returns the backend table holding info entries.
func (InfoEntry) TableName() string {
	return "info_entries"
}
