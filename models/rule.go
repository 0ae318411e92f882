package models

// Rule is a published regulation line shown on the resources page. Rules are
// maintained by the console and rendered verbatim by the portal.
type Rule struct {
	ID    string       `json:"id"`
	Type  DocumentType `json:"type"`
	Title string       `json:"title"`
	Body  string       `json:"body"`
}

// TableName returns the backend table holding rules.
func (Rule) TableName() string {
	return "rules"
}
