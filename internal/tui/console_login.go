package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/vndocs/govportal/internal/i18n"
)

type consoleLoginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	spinner    spinner.Model
	errMsg     string
}

func newConsoleLoginModel() consoleLoginModel {
	username := textinput.New()
	username.CharLimit = 40
	username.Width = 30
	username.Focus()

	password := textinput.New()
	password.CharLimit = 128
	password.Width = 30
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return consoleLoginModel{
		inputs:  []textinput.Model{username, password},
		spinner: s,
	}
}

func (m *consoleLoginModel) reset() {
	m.inputs[0].SetValue("")
	m.inputs[1].SetValue("")
	m.inputs[0].Focus()
	m.inputs[1].Blur()
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
}

func (m *consoleLoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m consoleLoginModel) view(lang i18n.Lang) string {
	var b strings.Builder

	b.WriteString(formRow(i18n.T(lang, "console.username"), "["+m.inputs[0].View()+"]"))
	b.WriteString("\n")
	b.WriteString(formRow(i18n.T(lang, "console.password"), "["+m.inputs[1].View()+"]"))
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(m.spinner.View())
		b.WriteString(" ...")
	} else {
		b.WriteString("[" + i18n.T(lang, "console.login") + "]")
	}

	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	return renderPage(i18n.T(lang, "console.title"),
		strings.TrimRight(b.String(), "\n"), "enter │ tab │ esc")
}
