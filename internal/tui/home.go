// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package tui

import (
	"strings"
	"time"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/models"
)

// menuEntry is one selectable row on the landing screen.
type menuEntry struct {
	labelKey string
	docType  models.DocumentType
	action   string
}

const (
	actionVerify    = "verify"
	actionApply     = "apply"
	actionInfo      = "info"
	actionResources = "resources"
	actionQuit      = "quit"
)

// consoleGestureWindow bounds the pause between the key presses of the
// hidden console gesture.
const consoleGestureWindow = 750 * time.Millisecond

// consoleGestureCount is how many rapid presses open the console login.
const consoleGestureCount = 5

type homeModel struct {
	entries []menuEntry
	idx     int
	status  string

	gesturePresses int
	gestureLast    time.Time
}

func newHomeModel() homeModel {
	return homeModel{
		entries: []menuEntry{
			{labelKey: "menu.verify", action: actionVerify},
			{labelKey: "menu.workpermit", docType: models.WorkPermit, action: actionApply},
			{labelKey: "menu.visa", docType: models.Visa, action: actionApply},
			{labelKey: "menu.trc", docType: models.TRC, action: actionApply},
			{labelKey: "menu.information", action: actionInfo},
			{labelKey: "menu.resources", action: actionResources},
			{labelKey: "menu.quit", action: actionQuit},
		},
	}
}

// recordGesturePress advances the hidden console gesture and reports
// whether the sequence completed. Slow presses restart the count.
func (m *homeModel) recordGesturePress(now time.Time) bool {
	if now.Sub(m.gestureLast) > consoleGestureWindow {
		m.gesturePresses = 0
	}
	m.gestureLast = now
	m.gesturePresses++
	if m.gesturePresses >= consoleGestureCount {
		m.gesturePresses = 0
		return true
	}
	return false
}

func (m homeModel) view(lang i18n.Lang) string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render(i18n.T(lang, "shell.subtitle")))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		b.WriteString(cursorFor(i == m.idx))
		b.WriteString(i18n.T(lang, entry.labelKey))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(i18n.T(lang, "shell.footer")))

	return renderPage(
		i18n.T(lang, "shell.title"),
		strings.TrimRight(b.String(), "\n"),
		"enter │ ↑/↓ │ v: "+i18n.T(lang, "shell.lang")+" │ q",
	)
}
