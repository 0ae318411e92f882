package models

// DocumentType identifies one of the three document services offered by the
// portal. The value is stored as-is in application and record rows and is
// part of the natural verification lookup key (passport number + type).
type DocumentType string

const (
	// WorkPermit is a work permit for foreign employees.
	WorkPermit DocumentType = "WORK_PERMIT"

	// Visa is an entry visa application.
	Visa DocumentType = "VISA"

	// TRC is a temporary residence card.
	TRC DocumentType = "TRC"
)

// Prefix returns the short tag embedded in generated application ids
// (e.g. "VN-WP-123456" for a work permit).
func (d DocumentType) Prefix() string {
	switch d {
	case WorkPermit:
		return "WP"
	case Visa:
		return "VISA"
	case TRC:
		return "TRC"
	}
	return "DOC"
}

// Valid reports whether d is one of the three known document types.
func (d DocumentType) Valid() bool {
	return d == WorkPermit || d == Visa || d == TRC
}

// DocumentTypes lists every supported document type in display order.
func DocumentTypes() []DocumentType {
	return []DocumentType{WorkPermit, Visa, TRC}
}
