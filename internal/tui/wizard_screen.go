// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/internal/wizard"
	"github.com/vndocs/govportal/models"
)

// formField is one input row of the active wizard step.
type formField struct {
	name       string
	attachment bool
	optional   bool
}

type wizardScreen struct {
	wiz     *wizard.Wizard
	fee     decimal.Decimal
	rows    []formField
	inputs  []textinput.Model
	focus   int
	status  string
	spinner spinner.Model
}

func newWizardScreen(wiz *wizard.Wizard, fee decimal.Decimal) wizardScreen {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := wizardScreen{wiz: wiz, fee: fee, spinner: s}
	m.rebuild()
	return m
}

func menuKeyFor(t models.DocumentType) string {
	switch t {
	case models.WorkPermit:
		return "workpermit"
	case models.Visa:
		return "visa"
	case models.TRC:
		return "trc"
	}
	return "home"
}

// rebuild recreates the input rows for the wizard's current step, reloading
// previously entered values so Back is lossless.
func (m *wizardScreen) rebuild() {
	step := m.wiz.CurrentStep()

	m.rows = m.rows[:0]
	for _, f := range step.Required {
		m.rows = append(m.rows, formField{name: f})
	}
	for _, f := range step.Optional {
		m.rows = append(m.rows, formField{name: f, optional: true})
	}
	for _, slot := range step.Attachments {
		m.rows = append(m.rows, formField{name: slot, attachment: true, optional: true})
	}

	m.inputs = make([]textinput.Model, len(m.rows))
	for i, row := range m.rows {
		in := textinput.New()
		in.CharLimit = 160
		in.Width = 40
		if row.attachment {
			if att, ok := m.wiz.Attachment(row.name); ok {
				in.SetValue(att.Name)
			}
		} else {
			in.SetValue(m.wiz.Value(row.name))
		}
		m.inputs[i] = in
	}

	m.focus = 0
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	m.status = ""
}

// sync writes the current input values back into the wizard.
func (m *wizardScreen) sync() {
	for i, row := range m.rows {
		value := strings.TrimSpace(m.inputs[i].Value())
		if row.attachment {
			if value != "" {
				m.wiz.Attach(row.name, wizard.Attachment{Name: value})
			}
			continue
		}
		m.wiz.Set(row.name, m.inputs[i].Value())
	}
}

func (m *wizardScreen) focusNext() {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *wizardScreen) focusPrev() {
	if len(m.inputs) == 0 {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m wizardScreen) view(lang i18n.Lang) string {
	var b strings.Builder

	title := i18n.T(lang, "menu."+menuKeyFor(m.wiz.DocumentType()))

	switch m.wiz.State() {
	case wizard.Done:
		b.WriteString(okStyle.Render(i18n.T(lang, "wizard.done")))
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render(m.wiz.GeneratedID()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(i18n.T(lang, "wizard.done.hint")))
		if m.status != "" {
			b.WriteString("\n\n")
			b.WriteString(okStyle.Render(m.status))
		}
		return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc │ c")

	case wizard.Submitting:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(i18n.T(lang, "wizard.submitting"))
		return renderPage(title, b.String(), "")
	}

	b.WriteString(i18n.Tf(lang, "wizard.step", m.wiz.StepIndex()+1, m.wiz.StepCount()))
	b.WriteString("\n\n")

	for i, row := range m.rows {
		label := i18n.T(lang, "field."+row.name)
		if !row.optional {
			label += " *"
		}
		marker := "  "
		if i == m.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(formRow(label, "["+m.inputs[i].View()+"]"))
		b.WriteString("\n")
	}

	if len(m.rows) == 0 || m.wiz.OnFinalStep() {
		b.WriteString("\n")
		b.WriteString(i18n.Tf(lang, "wizard.fee", m.fee.StringFixed(0)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(i18n.T(lang, "wizard.attach.hint")))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}

	hint := i18n.T(lang, "wizard.next")
	if m.wiz.OnFinalStep() {
		hint = i18n.T(lang, "wizard.submit")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		hint+" │ "+i18n.T(lang, "wizard.back")+" │ tab")
}
