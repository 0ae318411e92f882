package tui

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/internal/wizard"
	"github.com/vndocs/govportal/models"
)

type screen int

const (
	screenHome screen = iota
	screenInfo
	screenResources
	screenVerify
	screenWizard
	screenConsoleLogin
	screenConsole
)

// confirmAction is what a pending y/n overlay will do on "y".
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmWipe
)

type appModel struct {
	ctx      context.Context
	services *Services
	lang     i18n.Lang

	currentScreen screen

	home         homeModel
	info         infoModel
	resources    resourcesModel
	verify       verifyModel
	wizardScr    wizardScreen
	consoleLogin consoleLoginModel
	console      consoleModel

	consoleAuthed bool

	showConfirm bool
	confirmMsg  string
	confirm     confirmAction
}

func newAppModel(ctx context.Context, services *Services) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		lang:          i18n.EN,
		currentScreen: screenHome,
		home:          newHomeModel(),
		verify:        newVerifyModel(),
		consoleLogin:  newConsoleLoginModel(),
		console:       newConsoleModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showConfirm {
			return m.updateConfirm(keyMsg)
		}
	}

	switch msg := msg.(type) {
	case spinner.TickMsg:
		return m.updateSpinners(msg)

	case verifyDoneMsg:
		m.verify.checking = false
		m.verify.result = &msg.result
		return m, nil

	case submitDoneMsg:
		if msg.err != nil {
			m.wizardScr.wiz.FailSubmit()
			m.wizardScr.status = i18n.T(m.lang, "verify.error")
			return m, nil
		}
		m.wizardScr.wiz.FinishSubmit(msg.id)
		return m, nil

	case consoleLoginMsg:
		m.consoleLogin.submitting = false
		switch {
		case msg.blocked:
			m.consoleLogin.errMsg = i18n.T(m.lang, "console.blocked")
		case msg.err != nil:
			m.consoleLogin.errMsg = i18n.T(m.lang, "console.denied")
		default:
			m.consoleAuthed = true
			m.console.username = strings.TrimSpace(m.consoleLogin.inputs[0].Value())
			m.reloadConsole()
			m.currentScreen = screenConsole
		}
		return m, nil

	case consoleSavedMsg:
		m.console.busy = false
		if m.console.form != nil {
			m.console.form.saving = false
		}
		if msg.err != nil {
			if m.console.form != nil {
				m.console.form.errMsg = i18n.Tf(m.lang, "console.save.failed", msg.err.Error())
			} else {
				m.console.status = errorStyle.Render(i18n.Tf(m.lang, "console.save.failed", msg.err.Error()))
			}
			return m, nil
		}
		m.console.form = nil
		m.console.tab = msg.tab
		m.console.status = ""
		m.reloadConsole()
		return m, nil

	case deletedMsg:
		m.console.busy = false
		if msg.err != nil {
			m.console.status = errorStyle.Render(msg.err.Error())
		} else {
			m.console.status = ""
		}
		m.reloadConsole()
		return m, nil

	case wipeDoneMsg:
		m.console.busy = false
		if msg.failed > 0 {
			m.console.status = errorStyle.Render(i18n.Tf(m.lang, "console.save.failed", "wipe incomplete"))
		} else {
			m.console.status = ""
		}
		m.reloadConsole()
		return m, nil

	case refreshedMsg:
		m.console.busy = false
		m.reloadConsole()
		return m, nil

	case copiedMsg:
		switch m.currentScreen {
		case screenVerify:
			m.verify.status = i18n.T(m.lang, "verify.copied")
		case screenWizard:
			m.wizardScr.status = i18n.T(m.lang, "verify.copied")
		}
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenInfo:
		return m.updateInfo(msg)
	case screenResources:
		return m.updateResources(msg)
	case screenVerify:
		return m.updateVerify(msg)
	case screenWizard:
		return m.updateWizard(msg)
	case screenConsoleLogin:
		return m.updateConsoleLogin(msg)
	case screenConsole:
		return m.updateConsole(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHome:
		body = m.home.view(m.lang)
	case screenInfo:
		body = m.info.view(m.lang)
	case screenResources:
		body = m.resources.view(m.lang)
	case screenVerify:
		body = m.verify.view(m.lang)
	case screenWizard:
		body = m.wizardScr.view(m.lang)
	case screenConsoleLogin:
		body = m.consoleLogin.view(m.lang)
	case screenConsole:
		body = m.console.view(m.lang)
	}

	if m.showConfirm {
		body += "\n\n" + overlayBoxStyle.Render(m.confirmMsg)
	}

	return appStyle.Render(body)
}

func (m *appModel) reloadConsole() {
	state := m.services.State
	m.console.applications = state.Applications()
	m.console.records = state.Records()
	m.console.notices = state.InfoEntries()
	m.console.rules = state.Rules()
	m.console.devices = state.Devices()
	m.console.logs = state.AuditLogs()
	m.console.config = state.Config()
	m.console.clampIdx()
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.currentScreen == screenVerify && m.verify.checking:
		m.verify.spinner, cmd = m.verify.spinner.Update(msg)
	case m.currentScreen == screenWizard && m.wizardScr.wiz.State() == wizard.Submitting:
		m.wizardScr.spinner, cmd = m.wizardScr.spinner.Update(msg)
	case m.currentScreen == screenConsoleLogin && m.consoleLogin.submitting:
		m.consoleLogin.spinner, cmd = m.consoleLogin.spinner.Update(msg)
	case m.currentScreen == screenConsole && m.console.busy:
		m.console.spinner, cmd = m.console.spinner.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		action := m.confirm
		m.showConfirm = false
		m.confirm = confirmNone
		switch action {
		case confirmDelete:
			m.console.busy = true
			return m, tea.Batch(m.console.spinner.Tick, m.cmdDeleteSelected())
		case confirmWipe:
			m.console.busy = true
			return m, tea.Batch(m.console.spinner.Tick, m.cmdWipe())
		}
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmNone
	}
	return m, nil
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.hidden) {
		if m.home.recordGesturePress(time.Now()) {
			if m.consoleAuthed {
				m.reloadConsole()
				m.currentScreen = screenConsole
			} else {
				m.consoleLogin.reset()
				m.currentScreen = screenConsoleLogin
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.entries)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.lang):
		m.lang = m.lang.Toggle()
	case key.Matches(keyMsg, keys.enter):
		return m.openMenuEntry(m.home.entries[m.home.idx])
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) openMenuEntry(entry menuEntry) (tea.Model, tea.Cmd) {
	m.home.status = ""

	switch entry.action {
	case actionQuit:
		return m, tea.Quit

	case actionVerify:
		m.verify.reset()
		m.currentScreen = screenVerify

	case actionInfo:
		m.info = infoModel{entries: visibleInfoEntries(m.services.State.InfoEntries())}
		m.currentScreen = screenInfo

	case actionResources:
		m.resources = resourcesModel{rules: m.services.State.Rules()}
		m.currentScreen = screenResources

	case actionApply:
		cfg := m.services.State.Config()
		svc := cfg.ServiceFor(entry.docType)
		if !svc.Open {
			m.home.status = i18n.T(m.lang, "wizard.closed")
			return m, nil
		}
		m.wizardScr = newWizardScreen(wizard.New(entry.docType), svc.Fee)
		m.currentScreen = screenWizard
	}
	return m, nil
}

func (m appModel) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.info.idx > 0 {
			m.info.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.info.idx < len(m.info.entries)-1 {
			m.info.idx++
		}
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.currentScreen = screenHome
	}
	return m, nil
}

func (m appModel) updateResources(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.resources.idx > 0 {
			m.resources.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.resources.idx < len(m.resources.rules)-1 {
			m.resources.idx++
		}
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.currentScreen = screenHome
	}
	return m, nil
}

func (m appModel) updateVerify(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.verify.checking {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
		return m, nil

	case key.Matches(keyMsg, keys.tab):
		m.verify.inputs[m.verify.focus].Blur()
		m.verify.focus = (m.verify.focus + 1) % len(m.verify.inputs)
		m.verify.inputs[m.verify.focus].Focus()
		return m, nil

	case key.Matches(keyMsg, keys.left):
		types := models.DocumentTypes()
		m.verify.typeIdx = (m.verify.typeIdx - 1 + len(types)) % len(types)
		return m, nil

	case key.Matches(keyMsg, keys.right):
		types := models.DocumentTypes()
		m.verify.typeIdx = (m.verify.typeIdx + 1) % len(types)
		return m, nil

	case key.Matches(keyMsg, keys.copy) && m.verify.result != nil:
		return m, cmdCopy(m.verify.result.Message)

	case key.Matches(keyMsg, keys.enter):
		m.verify.checking = true
		m.verify.result = nil
		m.verify.status = ""
		return m, tea.Batch(
			m.verify.spinner.Tick,
			m.cmdVerify(
				m.verify.inputs[0].Value(),
				m.verify.inputs[1].Value(),
				m.verify.docType(),
			),
		)
	}

	var cmd tea.Cmd
	m.verify.inputs[m.verify.focus], cmd = m.verify.inputs[m.verify.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.wizardScr.wiz.State() {
	case wizard.Submitting:
		return m, nil

	case wizard.Done:
		switch {
		case key.Matches(keyMsg, keys.copy):
			return m, cmdCopy(m.wizardScr.wiz.GeneratedID())
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter):
			m.currentScreen = screenHome
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.wizardScr.sync()
		if !m.wizardScr.wiz.Back() {
			m.currentScreen = screenHome
			return m, nil
		}
		m.wizardScr.rebuild()
		return m, nil

	case key.Matches(keyMsg, keys.tab):
		m.wizardScr.sync()
		m.wizardScr.focusNext()
		return m, nil

	case key.Matches(keyMsg, keys.backtab):
		m.wizardScr.sync()
		m.wizardScr.focusPrev()
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		m.wizardScr.sync()

		if m.wizardScr.wiz.OnFinalStep() {
			if !m.wizardScr.wiz.BeginSubmit() {
				m.wizardScr.status = i18n.T(m.lang, "wizard.required")
				return m, nil
			}
			app := m.wizardScr.wiz.BuildApplication(m.services.State.Config())
			return m, tea.Batch(m.wizardScr.spinner.Tick, m.cmdSubmitApplication(app))
		}

		if !m.wizardScr.wiz.Next() {
			m.wizardScr.status = i18n.T(m.lang, "wizard.required")
			return m, nil
		}
		m.wizardScr.rebuild()
		return m, nil
	}

	if len(m.wizardScr.inputs) > 0 {
		var cmd tea.Cmd
		m.wizardScr.inputs[m.wizardScr.focus], cmd = m.wizardScr.inputs[m.wizardScr.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) updateConsoleLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.consoleLogin.submitting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
		return m, nil

	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		m.consoleLogin.focusNext()
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		username := strings.TrimSpace(m.consoleLogin.inputs[0].Value())
		password := m.consoleLogin.inputs[1].Value()
		if username == "" || password == "" {
			m.consoleLogin.errMsg = i18n.T(m.lang, "console.denied")
			return m, nil
		}
		m.consoleLogin.errMsg = ""
		m.consoleLogin.submitting = true
		return m, tea.Batch(m.consoleLogin.spinner.Tick, m.cmdConsoleLogin(username, password))
	}

	var cmd tea.Cmd
	m.consoleLogin.inputs[m.consoleLogin.focus], cmd = m.consoleLogin.inputs[m.consoleLogin.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateConsole(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.console.form != nil {
		return m.updateConsoleForm(keyMsg)
	}
	if m.console.busy {
		return m, nil
	}

	if m.console.filtering {
		switch {
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.esc):
			m.console.filtering = false
			m.console.filterInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.console.filterInput, cmd = m.console.filterInput.Update(keyMsg)
		m.console.query[m.console.tab] = m.console.filterInput.Value()
		m.console.clampIdx()
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
		return m, nil

	case key.Matches(keyMsg, keys.tab):
		m.console.tab = (m.console.tab + 1) % tabCount
		m.console.clampIdx()
		return m, nil

	case key.Matches(keyMsg, keys.backtab):
		m.console.tab = (m.console.tab + tabCount - 1) % tabCount
		m.console.clampIdx()
		return m, nil

	case key.Matches(keyMsg, keys.filter):
		m.console.filtering = true
		m.console.filterInput.SetValue(m.console.query[m.console.tab])
		m.console.filterInput.CursorEnd()
		m.console.filterInput.Focus()
		return m, nil

	case key.Matches(keyMsg, keys.up):
		if m.console.idx[m.console.tab] > 0 {
			m.console.idx[m.console.tab]--
		}
		return m, nil

	case key.Matches(keyMsg, keys.down):
		if m.console.idx[m.console.tab] < m.console.rowCount()-1 {
			m.console.idx[m.console.tab]++
		}
		return m, nil

	case key.Matches(keyMsg, keys.refresh):
		m.console.busy = true
		return m, tea.Batch(m.console.spinner.Tick, m.cmdRefresh())

	case key.Matches(keyMsg, keys.wipe):
		m.showConfirm = true
		m.confirm = confirmWipe
		m.confirmMsg = i18n.T(m.lang, "console.wipe.confirm")
		return m, nil

	case key.Matches(keyMsg, keys.delete):
		if id, ok := m.selectedID(); ok {
			m.showConfirm = true
			m.confirm = confirmDelete
			m.confirmMsg = i18n.Tf(m.lang, "console.delete.confirm", id)
		}
		return m, nil

	case key.Matches(keyMsg, keys.approve) && m.console.tab == tabApplications:
		if app, ok := m.console.selectedApplication(); ok {
			m.console.form = newRecordForm(recordFromApplication(app))
		}
		return m, nil

	case key.Matches(keyMsg, keys.edit) && m.console.tab == tabApplications:
		if app, ok := m.console.selectedApplication(); ok {
			m.console.form = newApplicationForm(app)
		}
		return m, nil

	case key.Matches(keyMsg, keys.newItem) && m.console.tab == tabRecords:
		if rec, ok := m.console.selectedRecord(); ok {
			m.console.form = newRecordForm(rec)
		} else {
			m.console.form = newRecordForm(models.OfficialRecord{})
		}
		return m, nil

	case key.Matches(keyMsg, keys.newItem) && m.console.tab == tabNotices:
		m.console.form = newNoticeForm(models.InfoEntry{})
		return m, nil

	case key.Matches(keyMsg, keys.edit) && m.console.tab == tabNotices:
		if entry, ok := m.console.selectedNotice(); ok {
			m.console.form = newNoticeForm(entry)
		}
		return m, nil

	case key.Matches(keyMsg, keys.newItem) && m.console.tab == tabRules:
		m.console.form = newRuleForm(models.Rule{})
		return m, nil

	case key.Matches(keyMsg, keys.block) && m.console.tab == tabDevices:
		if dev, ok := m.console.selectedDevice(); ok {
			m.console.busy = true
			return m, tea.Batch(m.console.spinner.Tick, m.cmdToggleDeviceBlock(dev))
		}
		return m, nil

	case key.Matches(keyMsg, keys.enter) && m.console.tab == tabSettings:
		if docType, ok := m.console.selectedServiceType(); ok {
			m.console.busy = true
			return m, tea.Batch(m.console.spinner.Tick, m.cmdToggleService(docType))
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) updateConsoleForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.console.form
	if form.saving {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.console.form = nil
		return m, nil

	case key.Matches(keyMsg, keys.tab):
		form.focusNext()
		return m, nil

	case key.Matches(keyMsg, keys.backtab):
		form.focusPrev()
		return m, nil

	case key.Matches(keyMsg, keys.enter):
		return m.saveConsoleForm(form)
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(keyMsg)
	return m, cmd
}

// saveConsoleForm validates the form for its kind and dispatches the write.
func (m appModel) saveConsoleForm(form *consoleForm) (tea.Model, tea.Cmd) {
	switch form.kind {
	case formRecord:
		rec, filePath := form.record()
		if rec.ID == "" || rec.PassportNumber == "" || !rec.Type.Valid() {
			form.errMsg = i18n.T(m.lang, "wizard.required")
			return m, nil
		}
		form.errMsg = ""
		form.saving = true
		return m, m.cmdSaveRecord(rec, filePath)

	case formApplication:
		status := models.ApplicationStatus(form.value(appFieldStatus))
		payment := models.PaymentStatus(form.value(appFieldPayment))
		if status == "" || payment == "" {
			form.errMsg = i18n.T(m.lang, "wizard.required")
			return m, nil
		}
		form.errMsg = ""
		form.saving = true
		return m, m.cmdUpdateApplication(form.application, status, payment, form.value(appFieldNotes))

	case formNotice:
		entry, err := form.notice()
		if err != nil {
			form.errMsg = err.Error()
			return m, nil
		}
		if entry.Title == "" {
			form.errMsg = i18n.T(m.lang, "wizard.required")
			return m, nil
		}
		form.errMsg = ""
		form.saving = true
		return m, m.cmdSaveNotice(entry)

	case formRule:
		rule := form.rule()
		if rule.Title == "" {
			form.errMsg = i18n.T(m.lang, "wizard.required")
			return m, nil
		}
		form.errMsg = ""
		form.saving = true
		return m, m.cmdSaveRule(rule)
	}
	return m, nil
}

func (m appModel) selectedID() (string, bool) {
	switch m.console.tab {
	case tabApplications:
		if app, ok := m.console.selectedApplication(); ok {
			return app.ID, true
		}
	case tabRecords:
		if rec, ok := m.console.selectedRecord(); ok {
			return rec.ID, true
		}
	case tabNotices:
		if entry, ok := m.console.selectedNotice(); ok {
			return entry.ID, true
		}
	case tabRules:
		if rule, ok := m.console.selectedRule(); ok {
			return rule.ID, true
		}
	case tabDevices:
		if dev, ok := m.console.selectedDevice(); ok {
			return dev.ID, true
		}
	}
	return "", false
}

// ---- Commands ----

func (m appModel) cmdVerify(passport, email string, docType models.DocumentType) tea.Cmd {
	ctx := m.ctx
	lang := m.lang
	verifier := m.services.Verifier

	return func() tea.Msg {
		return verifyDoneMsg{result: verifier.Verify(ctx, lang, passport, email, docType)}
	}
}

func (m appModel) cmdSubmitApplication(app models.Application) tea.Cmd {
	ctx := m.ctx
	state := m.services.State

	return func() tea.Msg {
		return submitDoneMsg{id: app.ID, err: state.AddApplication(ctx, app)}
	}
}

func (m appModel) cmdConsoleLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		// The device gate runs before any credential reaches the backend:
		// a blocked device is refused outright, and the refusal must not
		// bump its registration row. An unresolved IP skips the check;
		// device tracking never locks out the console by accident.
		if ip, err := services.Geo.PublicIP(ctx); err == nil {
			if dev := services.State.CheckDeviceStatus(ctx, ip); dev != nil && dev.Status == models.DeviceBlocked {
				return consoleLoginMsg{blocked: true}
			}
		}

		if _, err := services.Gateway.Login(ctx, username, password); err != nil {
			return consoleLoginMsg{err: err}
		}

		services.State.RegisterCurrentDevice(ctx)

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      username,
			Action:    "Console login",
		})

		return consoleLoginMsg{}
	}
}

func (m appModel) cmdSaveRecord(rec models.OfficialRecord, filePath string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username

	return func() tea.Msg {
		if filePath != "" {
			blob, err := os.ReadFile(filePath)
			if err != nil {
				return consoleSavedMsg{id: rec.ID, tab: tabRecords, err: err}
			}
			url, err := services.Gateway.UploadFile(ctx, services.UploadBucket, path.Base(filePath), blob)
			if err != nil {
				return consoleSavedMsg{id: rec.ID, tab: tabRecords, err: err}
			}
			rec.FileURL = url
		}

		var err error
		if services.State.HasRecord(rec.ID) {
			err = services.State.UpdateRecord(ctx, rec)
		} else {
			err = services.State.AddRecord(ctx, rec)
		}
		if err != nil {
			return consoleSavedMsg{id: rec.ID, tab: tabRecords, err: err}
		}

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "Record saved",
			Details:   rec.ID,
		})

		return consoleSavedMsg{id: rec.ID, tab: tabRecords}
	}
}

// applicationStatusPatch builds the merge patch for a console status edit:
// the new lifecycle fields plus the history extended with one admin entry.
// The application itself is left untouched.
func applicationStatusPatch(app models.Application, status models.ApplicationStatus,
	payment models.PaymentStatus, actor, notes string, now time.Time) map[string]any {
	updated := app.AppendHistory(models.HistoryEntry{
		Timestamp: now,
		Action:    fmt.Sprintf("Status set to %s, payment %s", status, payment),
		Actor:     actor,
		Notes:     notes,
	})

	return map[string]any{
		"status":         status,
		"payment_status": payment,
		"history":        updated.History,
	}
}

func (m appModel) cmdUpdateApplication(app models.Application, status models.ApplicationStatus,
	payment models.PaymentStatus, notes string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username

	return func() tea.Msg {
		patch := applicationStatusPatch(app, status, payment, user, notes, time.Now().UTC())
		if err := services.State.UpdateApplication(ctx, app.ID, patch); err != nil {
			return consoleSavedMsg{id: app.ID, tab: tabApplications, err: err}
		}

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "Application status changed",
			Details:   fmt.Sprintf("%s -> %s / %s", app.ID, status, payment),
		})

		return consoleSavedMsg{id: app.ID, tab: tabApplications}
	}
}

func (m appModel) cmdSaveNotice(entry models.InfoEntry) tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username

	exists := false
	if entry.ID == "" {
		entry.ID = services.NewID()
	} else {
		for _, e := range m.console.notices {
			if e.ID == entry.ID {
				exists = true
				break
			}
		}
	}

	return func() tea.Msg {
		var err error
		if exists {
			err = services.State.UpdateInfoEntry(ctx, entry.ID, entry)
		} else {
			err = services.State.AddInfoEntry(ctx, entry)
		}
		if err != nil {
			return consoleSavedMsg{id: entry.ID, tab: tabNotices, err: err}
		}

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "Notice saved",
			Details:   entry.ID,
		})

		return consoleSavedMsg{id: entry.ID, tab: tabNotices}
	}
}

func (m appModel) cmdSaveRule(rule models.Rule) tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username

	if rule.ID == "" {
		rule.ID = services.NewID()
	}

	return func() tea.Msg {
		if err := services.State.AddRule(ctx, rule); err != nil {
			return consoleSavedMsg{id: rule.ID, tab: tabRules, err: err}
		}

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "Rule published",
			Details:   rule.ID,
		})

		return consoleSavedMsg{id: rule.ID, tab: tabRules}
	}
}

func (m appModel) cmdToggleService(docType models.DocumentType) tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username

	return func() tea.Msg {
		cfg := services.State.Config()
		svc := cfg.ServiceFor(docType)
		svc.Open = !svc.Open
		if cfg.Services == nil {
			cfg.Services = map[models.DocumentType]models.ServiceDesc{}
		}
		cfg.Services[docType] = svc

		if err := services.State.UpdateConfig(ctx, cfg); err != nil {
			return consoleSavedMsg{id: string(docType), tab: tabSettings, err: err}
		}

		state := "closed"
		if svc.Open {
			state = "open"
		}
		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "Service availability changed",
			Details:   string(docType) + " -> " + state,
		})

		return consoleSavedMsg{id: string(docType), tab: tabSettings}
	}
}

func (m appModel) cmdDeleteSelected() tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username
	tab := m.console.tab

	var id string
	var fileURL string
	switch tab {
	case tabApplications:
		if app, ok := m.console.selectedApplication(); ok {
			id = app.ID
		}
	case tabRecords:
		if rec, ok := m.console.selectedRecord(); ok {
			id = rec.ID
			fileURL = rec.FileURL
		}
	case tabNotices:
		if entry, ok := m.console.selectedNotice(); ok {
			id = entry.ID
		}
	case tabRules:
		if rule, ok := m.console.selectedRule(); ok {
			id = rule.ID
		}
	case tabDevices:
		if dev, ok := m.console.selectedDevice(); ok {
			id = dev.ID
		}
	}

	return func() tea.Msg {
		if id == "" {
			return deletedMsg{}
		}

		var err error
		switch tab {
		case tabApplications:
			err = services.State.DeleteApplication(ctx, id)
		case tabRecords:
			// Remove the stored artifact first, best effort; a dangling
			// file is preferable to a record pointing at nothing.
			if objectPath := storedObjectPath(fileURL, services.UploadBucket); objectPath != "" {
				_ = services.Gateway.RemoveFile(ctx, services.UploadBucket, objectPath)
			}
			err = services.State.DeleteRecord(ctx, id)
		case tabNotices:
			err = services.State.DeleteInfoEntry(ctx, id)
		case tabRules:
			err = services.State.DeleteRule(ctx, id)
		case tabDevices:
			err = services.State.DeleteDevice(ctx, id)
		default:
			return deletedMsg{}
		}
		if err != nil {
			return deletedMsg{err: err}
		}

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "Entry deleted",
			Details:   id,
		})

		return deletedMsg{}
	}
}

func (m appModel) cmdToggleDeviceBlock(dev models.DeviceInfo) tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username

	next := models.DeviceBlocked
	if dev.Status == models.DeviceBlocked {
		next = models.DeviceActive
	}

	return func() tea.Msg {
		err := services.State.UpdateDevice(ctx, dev.ID, map[string]any{"status": next})
		if err != nil {
			return deletedMsg{err: err}
		}

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "Device status changed",
			Details:   dev.ID + " -> " + string(next),
		})

		return deletedMsg{}
	}
}

func (m appModel) cmdWipe() tea.Cmd {
	ctx := m.ctx
	services := m.services
	user := m.console.username

	return func() tea.Msg {
		failed := services.State.WipeAllData(ctx)

		_ = services.State.AddAuditLog(ctx, models.AuditLog{
			ID:        services.NewID(),
			Timestamp: time.Now().UTC(),
			User:      user,
			Action:    "All data wiped",
		})

		return wipeDoneMsg{failed: failed}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	state := m.services.State

	return func() tea.Msg {
		state.RefreshAllData(ctx)
		return refreshedMsg{}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		_ = clipboard.WriteAll(text)
		return copiedMsg{}
	}
}

// storedObjectPath extracts the object path inside bucket from a public
// file URL, e.g. ".../files/documents/ab12-scan.pdf" -> "ab12-scan.pdf".
// Returns "" when the URL does not reference the bucket.
func storedObjectPath(fileURL, bucket string) string {
	marker := "/" + bucket + "/"
	i := strings.LastIndex(fileURL, marker)
	if i < 0 {
		return ""
	}
	return fileURL[i+len(marker):]
}
