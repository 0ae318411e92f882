// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/shopspring/decimal"

	"github.com/vndocs/govportal/internal/i18n"
	"github.com/vndocs/govportal/models"
)

type consoleTab int

const (
	tabApplications consoleTab = iota
	tabRecords
	tabNotices
	tabRules
	tabDevices
	tabLogs
	tabSettings
	tabCount
)

var consoleTabKeys = map[consoleTab]string{
	tabApplications: "console.applications",
	tabRecords:      "console.records",
	tabNotices:      "console.notices",
	tabRules:        "console.rules",
	tabDevices:      "console.devices",
	tabLogs:         "console.logs",
	tabSettings:     "console.settings",
}

type consoleModel struct {
	username string
	tab      consoleTab
	idx      map[consoleTab]int

	applications []models.Application
	records      []models.OfficialRecord
	notices      []models.InfoEntry
	rules        []models.Rule
	devices      []models.DeviceInfo
	logs         []models.AuditLog
	config       models.AppConfig

	// query holds the per-tab filter text; filterInput edits the active
	// tab's query while filtering is set.
	query       map[consoleTab]string
	filterInput textinput.Model
	filtering   bool

	busy    bool
	spinner spinner.Model
	status  string

	form *consoleForm
}

func newConsoleModel() consoleModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	f := textinput.New()
	f.Prompt = "/"
	f.CharLimit = 64
	f.Width = 32

	return consoleModel{
		idx:         map[consoleTab]int{},
		query:       map[consoleTab]string{},
		filterInput: f,
		spinner:     s,
	}
}

// matchesFilter reports whether any of fields contains query as a
// case-insensitive substring. An empty query matches everything.
func matchesFilter(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func (m *consoleModel) visibleApplications() []models.Application {
	q := m.query[tabApplications]
	out := make([]models.Application, 0, len(m.applications))
	for _, a := range m.applications {
		if matchesFilter(q, a.ID, a.FullName, a.PassportNumber,
			string(a.Type), string(a.Status), string(a.PaymentStatus)) {
			out = append(out, a)
		}
	}
	return out
}

func (m *consoleModel) visibleRecords() []models.OfficialRecord {
	q := m.query[tabRecords]
	out := make([]models.OfficialRecord, 0, len(m.records))
	for _, r := range m.records {
		if matchesFilter(q, r.ID, r.FullName, r.PassportNumber,
			string(r.Type), string(r.Status)) {
			out = append(out, r)
		}
	}
	return out
}

func (m *consoleModel) visibleNotices() []models.InfoEntry {
	q := m.query[tabNotices]
	out := make([]models.InfoEntry, 0, len(m.notices))
	for _, e := range m.notices {
		if matchesFilter(q, e.ID, e.Title, string(e.Category), string(e.Status)) {
			out = append(out, e)
		}
	}
	return out
}

func (m *consoleModel) visibleRules() []models.Rule {
	q := m.query[tabRules]
	out := make([]models.Rule, 0, len(m.rules))
	for _, r := range m.rules {
		if matchesFilter(q, r.ID, r.Title, string(r.Type)) {
			out = append(out, r)
		}
	}
	return out
}

// visibleDevices filters the device guard list: the query matches the
// status as well as free text on the IP, device name or location.
func (m *consoleModel) visibleDevices() []models.DeviceInfo {
	q := m.query[tabDevices]
	out := make([]models.DeviceInfo, 0, len(m.devices))
	for _, d := range m.devices {
		if matchesFilter(q, d.ID, d.IP, d.Device, string(d.Status), d.Country, d.City) {
			out = append(out, d)
		}
	}
	return out
}

func (m *consoleModel) visibleLogs() []models.AuditLog {
	q := m.query[tabLogs]
	out := make([]models.AuditLog, 0, len(m.logs))
	for _, l := range m.logs {
		if matchesFilter(q, l.User, l.Action, l.Details) {
			out = append(out, l)
		}
	}
	return out
}

// serviceTypes is the fixed row order of the settings tab.
func serviceTypes() []models.DocumentType {
	return models.DocumentTypes()
}

func (m *consoleModel) rowCount() int {
	switch m.tab {
	case tabApplications:
		return len(m.visibleApplications())
	case tabRecords:
		return len(m.visibleRecords())
	case tabNotices:
		return len(m.visibleNotices())
	case tabRules:
		return len(m.visibleRules())
	case tabDevices:
		return len(m.visibleDevices())
	case tabLogs:
		return len(m.visibleLogs())
	case tabSettings:
		return len(serviceTypes())
	}
	return 0
}

func (m *consoleModel) clampIdx() {
	n := m.rowCount()
	if m.idx[m.tab] >= n {
		m.idx[m.tab] = n - 1
	}
	if m.idx[m.tab] < 0 {
		m.idx[m.tab] = 0
	}
}

func (m *consoleModel) selectedApplication() (models.Application, bool) {
	rows := m.visibleApplications()
	i := m.idx[tabApplications]
	if m.tab != tabApplications || i < 0 || i >= len(rows) {
		return models.Application{}, false
	}
	return rows[i], true
}

func (m *consoleModel) selectedRecord() (models.OfficialRecord, bool) {
	rows := m.visibleRecords()
	i := m.idx[tabRecords]
	if m.tab != tabRecords || i < 0 || i >= len(rows) {
		return models.OfficialRecord{}, false
	}
	return rows[i], true
}

func (m *consoleModel) selectedNotice() (models.InfoEntry, bool) {
	rows := m.visibleNotices()
	i := m.idx[tabNotices]
	if m.tab != tabNotices || i < 0 || i >= len(rows) {
		return models.InfoEntry{}, false
	}
	return rows[i], true
}

func (m *consoleModel) selectedRule() (models.Rule, bool) {
	rows := m.visibleRules()
	i := m.idx[tabRules]
	if m.tab != tabRules || i < 0 || i >= len(rows) {
		return models.Rule{}, false
	}
	return rows[i], true
}

func (m *consoleModel) selectedDevice() (models.DeviceInfo, bool) {
	rows := m.visibleDevices()
	i := m.idx[tabDevices]
	if m.tab != tabDevices || i < 0 || i >= len(rows) {
		return models.DeviceInfo{}, false
	}
	return rows[i], true
}

func (m *consoleModel) selectedServiceType() (models.DocumentType, bool) {
	types := serviceTypes()
	i := m.idx[tabSettings]
	if m.tab != tabSettings || i < 0 || i >= len(types) {
		return "", false
	}
	return types[i], true
}

func (m consoleModel) view(lang i18n.Lang) string {
	if m.form != nil {
		return m.form.view(lang)
	}

	var b strings.Builder

	var tabs []string
	for t := consoleTab(0); t < tabCount; t++ {
		label := i18n.T(lang, consoleTabKeys[t])
		if t == m.tab {
			label = "[" + label + "]"
		}
		tabs = append(tabs, label)
	}
	b.WriteString(strings.Join(tabs, "  "))
	if m.busy {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n")

	switch {
	case m.filtering:
		b.WriteString(i18n.T(lang, "console.filter"))
		b.WriteString(" ")
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	case m.query[m.tab] != "":
		b.WriteString(helpStyle.Render(i18n.T(lang, "console.filter") + " /" + m.query[m.tab]))
		b.WriteString("\n\n")
	default:
		b.WriteString("\n")
	}

	sel := m.idx[m.tab]
	switch m.tab {
	case tabApplications:
		for i, a := range m.visibleApplications() {
			b.WriteString(cursorFor(i == sel))
			b.WriteString(fmt.Sprintf("%-16s %-6s %-12s %-10s %s",
				a.ID, a.Type.Prefix(), fitText(a.FullName, 12), a.Status, a.PaymentStatus))
			b.WriteString("\n")
		}
	case tabRecords:
		for i, r := range m.visibleRecords() {
			file := " "
			if r.FileURL != "" {
				file = "#"
			}
			b.WriteString(cursorFor(i == sel))
			b.WriteString(fmt.Sprintf("%-16s %-6s %-12s %-10s %s",
				r.ID, r.Type.Prefix(), fitText(r.FullName, 12), r.Status, file))
			b.WriteString("\n")
		}
	case tabNotices:
		for i, e := range m.visibleNotices() {
			b.WriteString(cursorFor(i == sel))
			b.WriteString(fmt.Sprintf("%-10s %-8s %-8s %s",
				e.Date, fitText(string(e.Category), 8), fitText(string(e.Status), 8), fitText(e.Title, 30)))
			b.WriteString("\n")
		}
	case tabRules:
		for i, r := range m.visibleRules() {
			b.WriteString(cursorFor(i == sel))
			b.WriteString(fmt.Sprintf("%-6s %s", r.Type.Prefix(), fitText(r.Title, 48)))
			b.WriteString("\n")
		}
	case tabDevices:
		for i, d := range m.visibleDevices() {
			b.WriteString(cursorFor(i == sel))
			b.WriteString(fmt.Sprintf("%-14s %-16s %-10s %-8s %s",
				d.ID, d.IP, fitText(d.City, 10), d.OS, d.Status))
			b.WriteString("\n")
		}
	case tabLogs:
		for i, l := range m.visibleLogs() {
			b.WriteString(cursorFor(i == sel))
			b.WriteString(fmt.Sprintf("%s %-10s %s",
				l.Timestamp.Format("2006-01-02 15:04"), fitText(l.User, 10), fitText(l.Action, 34)))
			b.WriteString("\n")
		}
	case tabSettings:
		for i, t := range serviceTypes() {
			svc := m.config.ServiceFor(t)
			state := i18n.T(lang, "console.closed")
			if svc.Open {
				state = i18n.T(lang, "console.open")
			}
			b.WriteString(cursorFor(i == sel))
			b.WriteString(fmt.Sprintf("%-28s %14s VND  %s",
				fitText(svc.Title, 28), svc.Fee.StringFixed(0), state))
			b.WriteString("\n")
		}
	}

	if m.rowCount() == 0 {
		b.WriteString("-\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	hotKeys := "/ │ tab │ ↑/↓ │ r │ d │ w: " + i18n.T(lang, "console.wipe") + " │ esc"
	switch m.tab {
	case tabApplications:
		hotKeys = "a: approve │ e: edit │ " + hotKeys
	case tabRecords:
		hotKeys = "n: new │ " + hotKeys
	case tabNotices:
		hotKeys = "n: new │ e: edit │ " + hotKeys
	case tabRules:
		hotKeys = "n: new │ " + hotKeys
	case tabDevices:
		hotKeys = "b: block │ " + hotKeys
	case tabSettings:
		hotKeys = "enter: toggle │ " + hotKeys
	}

	return renderPage(i18n.T(lang, "console.title")+" — "+m.username,
		strings.TrimRight(b.String(), "\n"), hotKeys)
}

// formKind selects which collection a console form writes to.
type formKind int

const (
	formRecord formKind = iota
	formApplication
	formNotice
	formRule
)

// consoleForm is the shared line-editor behind every console intake and
// edit surface. The field order is fixed per kind; collectors below read
// the inputs back into model values.
type consoleForm struct {
	kind     formKind
	titleKey string
	labels   []string
	inputs   []textinput.Model
	focus    int
	errMsg   string
	saving   bool

	// application is the row being edited when kind is formApplication;
	// the patch needs its current history.
	application models.Application
}

func newConsoleForm(kind formKind, titleKey string, labels, values []string) *consoleForm {
	form := &consoleForm{kind: kind, titleKey: titleKey, labels: labels}
	form.inputs = make([]textinput.Model, len(labels))
	for i := range form.inputs {
		in := textinput.New()
		in.CharLimit = 160
		in.Width = 40
		in.SetValue(values[i])
		form.inputs[i] = in
	}
	form.inputs[0].Focus()
	return form
}

// Input order of the record intake form.
const (
	recFieldID = iota
	recFieldFullName
	recFieldPassport
	recFieldNationality
	recFieldDateOfBirth
	recFieldType
	recFieldStatus
	recFieldIssueDate
	recFieldExpiryDate
	recFieldCompany
	recFieldJobTitle
	recFieldAuthority
	recFieldFilePath
	recFieldCount
)

var recordFormLabels = [recFieldCount]string{
	"ID", "Full name", "Passport number", "Nationality", "Date of birth",
	"Type", "Status", "Issue date", "Expiry date", "Company", "Job title",
	"Authority", "File path",
}

// newRecordForm builds the intake form. A seed application pre-fills the
// identity fields; editing an existing record pre-fills everything.
func newRecordForm(seed models.OfficialRecord) *consoleForm {
	values := [recFieldCount]string{
		seed.ID, seed.FullName, seed.PassportNumber, seed.Nationality,
		seed.DateOfBirth, string(seed.Type), string(seed.Status),
		seed.IssueDate, seed.ExpiryDate, seed.Company, seed.JobTitle,
		seed.Authority, "",
	}
	if values[recFieldStatus] == "" {
		values[recFieldStatus] = string(models.RecordVerified)
	}

	return newConsoleForm(formRecord, "console.records", recordFormLabels[:], values[:])
}

// Input order of the application status edit form.
const (
	appFieldStatus = iota
	appFieldPayment
	appFieldNotes
	appFieldCount
)

// newApplicationForm builds the status edit form over an application row.
func newApplicationForm(app models.Application) *consoleForm {
	form := newConsoleForm(formApplication, "console.applications",
		[]string{"Status", "Payment status", "Notes"},
		[]string{string(app.Status), string(app.PaymentStatus), ""})
	form.application = app
	return form
}

// Input order of the notice form.
const (
	noticeFieldID = iota
	noticeFieldType
	noticeFieldCategory
	noticeFieldStatus
	noticeFieldTitle
	noticeFieldDescription
	noticeFieldAmount
	noticeFieldDate
	noticeFieldCount
)

var noticeFormLabels = [noticeFieldCount]string{
	"ID", "Type", "Category", "Status", "Title", "Description", "Amount", "Date",
}

// newNoticeForm builds the info-entry form. A zero seed starts a new
// active entry.
func newNoticeForm(seed models.InfoEntry) *consoleForm {
	amount := ""
	if !seed.Amount.IsZero() {
		amount = seed.Amount.StringFixed(0)
	}
	values := [noticeFieldCount]string{
		seed.ID, string(seed.Type), string(seed.Category), string(seed.Status),
		seed.Title, seed.Description, amount, seed.Date,
	}
	if values[noticeFieldStatus] == "" {
		values[noticeFieldStatus] = string(models.InfoActive)
	}

	return newConsoleForm(formNotice, "console.notices", noticeFormLabels[:], values[:])
}

// Input order of the rule form.
const (
	ruleFieldID = iota
	ruleFieldType
	ruleFieldTitle
	ruleFieldBody
	ruleFieldCount
)

// newRuleForm builds the regulation intake form.
func newRuleForm(seed models.Rule) *consoleForm {
	return newConsoleForm(formRule, "console.rules",
		[]string{"ID", "Type", "Title", "Body"},
		[]string{seed.ID, string(seed.Type), seed.Title, seed.Body})
}

// recordFromApplication seeds the intake form from a submitted application.
func recordFromApplication(a models.Application) models.OfficialRecord {
	rec := models.OfficialRecord{
		ID:             a.ID,
		FullName:       a.FullName,
		PassportNumber: a.PassportNumber,
		Nationality:    a.Nationality,
		DateOfBirth:    a.DateOfBirth,
		Type:           a.Type,
		Status:         models.RecordVerified,
	}
	if a.Details.WorkPermit != nil {
		rec.Company = a.Details.WorkPermit.Employer
		rec.JobTitle = a.Details.WorkPermit.JobTitle
	}
	if a.Details.TRC != nil {
		rec.Company = a.Details.TRC.SponsorName
	}
	return rec
}

func (f *consoleForm) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *consoleForm) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *consoleForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// record collects the form into an OfficialRecord plus the optional local
// file path to upload.
func (f *consoleForm) record() (models.OfficialRecord, string) {
	return models.OfficialRecord{
		ID:             f.value(recFieldID),
		FullName:       f.value(recFieldFullName),
		PassportNumber: f.value(recFieldPassport),
		Nationality:    f.value(recFieldNationality),
		DateOfBirth:    f.value(recFieldDateOfBirth),
		Type:           models.DocumentType(f.value(recFieldType)),
		Status:         models.RecordStatus(f.value(recFieldStatus)),
		IssueDate:      f.value(recFieldIssueDate),
		ExpiryDate:     f.value(recFieldExpiryDate),
		Company:        f.value(recFieldCompany),
		JobTitle:       f.value(recFieldJobTitle),
		Authority:      f.value(recFieldAuthority),
	}, f.value(recFieldFilePath)
}

// notice collects the form into an InfoEntry. The amount field must be a
// decimal number or empty.
func (f *consoleForm) notice() (models.InfoEntry, error) {
	amount := decimal.Zero
	if raw := f.value(noticeFieldAmount); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return models.InfoEntry{}, fmt.Errorf("invalid amount: %w", err)
		}
		amount = parsed
	}

	return models.InfoEntry{
		ID:          f.value(noticeFieldID),
		Type:        models.DocumentType(f.value(noticeFieldType)),
		Category:    models.InfoCategory(f.value(noticeFieldCategory)),
		Status:      models.InfoStatus(f.value(noticeFieldStatus)),
		Title:       f.value(noticeFieldTitle),
		Description: f.value(noticeFieldDescription),
		Amount:      amount,
		Date:        f.value(noticeFieldDate),
	}, nil
}

// rule collects the form into a Rule.
func (f *consoleForm) rule() models.Rule {
	return models.Rule{
		ID:    f.value(ruleFieldID),
		Type:  models.DocumentType(f.value(ruleFieldType)),
		Title: f.value(ruleFieldTitle),
		Body:  f.value(ruleFieldBody),
	}
}

func (f consoleForm) view(lang i18n.Lang) string {
	var b strings.Builder

	for i, label := range f.labels {
		marker := "  "
		if i == f.focus {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(formRow(label, "["+f.inputs[i].View()+"]"))
		b.WriteString("\n")
	}

	if f.saving {
		b.WriteString("\n...")
	}
	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
	}

	return renderPage(i18n.T(lang, f.titleKey),
		strings.TrimRight(b.String(), "\n"), "enter: save │ tab │ esc")
}
