package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/models"
)

type infoModel struct {
	entries []models.InfoEntry
	idx     int
}

// visibleInfoEntries filters out inactive entries and orders the rest:
// pinned first, then newest first by publication date.
func visibleInfoEntries(all []models.InfoEntry) []models.InfoEntry {
	entries := make([]models.InfoEntry, 0, len(all))
	for _, e := range all {
		if e.Status != models.InfoInactive {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if (entries[i].Status == models.InfoPinned) != (entries[j].Status == models.InfoPinned) {
			return entries[i].Status == models.InfoPinned
		}
		return entries[i].Date > entries[j].Date
	})
	return entries
}

func (m infoModel) current() (models.InfoEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.InfoEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m infoModel) view(lang i18n.Lang) string {
	var b strings.Builder

	b.WriteString(i18n.T(lang, "page.about.body"))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(i18n.T(lang, "page.news.empty"))
		b.WriteString("\n")
	} else {
		for i, e := range m.entries {
			marker := "  "
			if e.Status == models.InfoPinned {
				marker = "* "
			}
			b.WriteString(cursorFor(i == m.idx))
			b.WriteString(marker)
			b.WriteString(fmt.Sprintf("%-10s  %s", e.Date, fitText(e.Title, 46)))
			b.WriteString("\n")
		}

		if e, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(fitText(e.Description, 240))
			b.WriteString("\n")
			if e.Category == models.InfoCost && !e.Amount.IsZero() {
				b.WriteString(i18n.Tf(lang, "wizard.fee", e.Amount.StringFixed(0)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(i18n.T(lang, "page.support.body"))

	return renderPage(
		i18n.T(lang, "menu.information"),
		strings.TrimRight(b.String(), "\n"),
		"↑/↓ │ esc",
	)
}
