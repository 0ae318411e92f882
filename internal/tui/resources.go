package tui

import (
	"fmt"
	"strings"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/models"
)

// resourcesModel renders the published regulations on the public resources
// page. Rules come from the console verbatim.
type resourcesModel struct {
	rules []models.Rule
	idx   int
}

func (m resourcesModel) current() (models.Rule, bool) {
	if len(m.rules) == 0 || m.idx < 0 || m.idx >= len(m.rules) {
		return models.Rule{}, false
	}
	return m.rules[m.idx], true
}

func (m resourcesModel) view(lang i18n.Lang) string {
	var b strings.Builder

	if len(m.rules) == 0 {
		b.WriteString(i18n.T(lang, "page.resources.empty"))
		b.WriteString("\n")
	} else {
		for i, r := range m.rules {
			b.WriteString(cursorFor(i == m.idx))
			b.WriteString(fmt.Sprintf("%-6s %s", r.Type.Prefix(), fitText(r.Title, 48)))
			b.WriteString("\n")
		}

		if r, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(fitText(r.Body, 360))
			b.WriteString("\n")
		}
	}

	return renderPage(
		i18n.T(lang, "menu.resources"),
		strings.TrimRight(b.String(), "\n"),
		"↑/↓ │ esc",
	)
}
