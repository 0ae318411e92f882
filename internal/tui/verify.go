// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/models"
)

type verifyModel struct {
	inputs  []textinput.Model
	focus   int
	typeIdx int

	checking bool
	spinner  spinner.Model

	result *models.VerificationResult
	status string
}

func newVerifyModel() verifyModel {
	passport := textinput.New()
	passport.CharLimit = 20
	passport.Width = 30
	passport.Focus()

	email := textinput.New()
	email.CharLimit = 120
	email.Width = 30

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return verifyModel{
		inputs:  []textinput.Model{passport, email},
		spinner: s,
	}
}

func (m verifyModel) docType() models.DocumentType {
	types := models.DocumentTypes()
	return types[m.typeIdx%len(types)]
}

func (m *verifyModel) reset() {
	m.inputs[0].SetValue("")
	m.inputs[1].SetValue("")
	m.inputs[0].Focus()
	m.inputs[1].Blur()
	m.focus = 0
	m.typeIdx = 0
	m.checking = false
	m.result = nil
	m.status = ""
}

func (m verifyModel) view(lang i18n.Lang) string {
	var b strings.Builder

	types := models.DocumentTypes()
	typeLabels := map[models.DocumentType]string{
		models.WorkPermit: i18n.T(lang, "menu.workpermit"),
		models.Visa:       i18n.T(lang, "menu.visa"),
		models.TRC:        i18n.T(lang, "menu.trc"),
	}

	b.WriteString(formRow(i18n.T(lang, "verify.passport"), "["+m.inputs[0].View()+"]"))
	b.WriteString("\n")
	b.WriteString(formRow(i18n.T(lang, "verify.email"), "["+m.inputs[1].View()+"]"))
	b.WriteString("\n")

	var typeCells []string
	for i, t := range types {
		cell := typeLabels[t]
		if i == m.typeIdx {
			cell = "[" + cell + "]"
		}
		typeCells = append(typeCells, cell)
	}
	b.WriteString(formRow(i18n.T(lang, "verify.type"), strings.Join(typeCells, "  ")))
	b.WriteString("\n\n")

	switch {
	case m.checking:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(i18n.T(lang, "verify.checking"))
		b.WriteString("\n")
	case m.result != nil:
		b.WriteString(renderVerificationResult(lang, *m.result))
	default:
		b.WriteString("[" + i18n.T(lang, "verify.submit") + "]")
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}

	hotKeys := "enter │ tab │ ←/→ │ esc"
	if m.result != nil {
		hotKeys += " │ " + i18n.T(lang, "verify.copy")
	}

	return renderPage(i18n.T(lang, "verify.title"), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderVerificationResult(lang i18n.Lang, r models.VerificationResult) string {
	var b strings.Builder

	switch r.Status {
	case models.VerificationValid:
		b.WriteString(okStyle.Render(r.Message))
	case models.VerificationExpired, models.VerificationInvalid:
		b.WriteString(errorStyle.Render(r.Message))
	default:
		b.WriteString(r.Message)
	}
	b.WriteString("\n")

	if r.DocumentID != models.DocumentNotFound && r.DocumentID != models.DocumentError {
		b.WriteString("\n")
		b.WriteString(formRow("ID", r.DocumentID))
		b.WriteString("\n")
		if r.HolderName != "" {
			b.WriteString(formRow(i18n.T(lang, "field.full_name"), r.HolderName))
			b.WriteString("\n")
		}
		if r.IssueDate != "" {
			b.WriteString(formRow("", r.IssueDate+" — "+orDash(r.ExpiryDate)))
			b.WriteString("\n")
		}
		if r.SubmissionDate != "" {
			b.WriteString(formRow("", r.SubmissionDate))
			b.WriteString("\n")
		}
	}

	return b.String()
}
