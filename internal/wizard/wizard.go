// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The govportal Authors

// Package wizard implements the multi-step application form state machines
// for the three document services. A wizard is a linear sequence of steps,
// each listing the fields it collects; advancing is gated on the presence
// of the current step's required fields, going back is always allowed and
// never loses entered data because the whole lifetime shares one
// consolidated form map.
package wizard

import (
	"fmt"
	"strings"
	"time"

	"github.com/vndocs/govportal/models"
)

// Form field names. They double as keys into the consolidated form map and
// as suffixes of the i18n label keys (field.<name>).
const (
	FieldFullName       = "full_name"
	FieldPassportNumber = "passport_number"
	FieldNationality    = "nationality"
	FieldDateOfBirth    = "date_of_birth"
	FieldGender         = "gender"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldCurrentAddress = "current_address"
	FieldVietnamAddress = "vietnam_address"
	FieldEmployer       = "employer"
	FieldJobTitle       = "job_title"
	FieldVisaType       = "visa_type"
	FieldEntryType      = "entry_type"
	FieldDuration       = "duration"
	FieldSponsorName    = "sponsor_name"
	FieldLicenseNumber  = "license_number"
)

// Attachment field names. Attachments are local handles only; the public
// wizard never uploads them and they are not required to advance.
const (
	AttachPassportScan = "passport_scan"
	AttachPhoto        = "photo"
	AttachSupporting   = "supporting_doc"
	AttachPaymentProof = "payment_proof"
)

// State is the lifecycle phase of a wizard.
type State int

const (
	// Collecting means the wizard is on one of its form steps.
	Collecting State = iota
	// Submitting means the final step was confirmed and the remote create
	// is in flight.
	Submitting
	// Done means the application was created; the generated id is
	// available via GeneratedID.
	Done
)

// Attachment is a local file handle kept for display purposes. Only the
// name is retained; content never leaves the machine through this flow.
type Attachment struct {
	Name string
	Size int64
}

// Step is one screen of the wizard.
type Step struct {
	// Key is the i18n key suffix of the step title (wizard.step.<Key>).
	Key string

	// Required lists the form fields that must be non-blank before the
	// wizard may advance past this step.
	Required []string

	// Optional lists fields shown on this step that do not gate
	// progression.
	Optional []string

	// Attachments lists the attachment slots offered on this step.
	Attachments []string
}

var personalStep = Step{
	Key: "personal",
	Required: []string{
		FieldFullName, FieldPassportNumber, FieldNationality,
		FieldDateOfBirth, FieldGender,
	},
}

var contactStep = Step{
	Key: "contact",
	Required: []string{
		FieldEmail, FieldPhone, FieldCurrentAddress, FieldVietnamAddress,
	},
}

var reviewStep = Step{
	Key:         "review",
	Attachments: []string{AttachPaymentProof},
}

// steps returns the fixed step list for a document type: four steps for
// work permits, five for visas and residence cards.
func steps(docType models.DocumentType) []Step {
	switch docType {
	case models.WorkPermit:
		return []Step{
			personalStep,
			contactStep,
			{
				Key:         "employment",
				Required:    []string{FieldEmployer, FieldJobTitle},
				Attachments: []string{AttachPassportScan, AttachPhoto, AttachSupporting},
			},
			reviewStep,
		}
	case models.Visa:
		return []Step{
			personalStep,
			contactStep,
			{
				Key:      "visa_details",
				Required: []string{FieldVisaType, FieldEntryType, FieldDuration},
			},
			{
				Key:         "documents",
				Attachments: []string{AttachPassportScan, AttachPhoto, AttachSupporting},
			},
			reviewStep,
		}
	case models.TRC:
		return []Step{
			personalStep,
			contactStep,
			{
				Key:      "sponsor",
				Required: []string{FieldSponsorName, FieldLicenseNumber, FieldDuration},
			},
			{
				Key:         "documents",
				Attachments: []string{AttachPassportScan, AttachPhoto, AttachSupporting},
			},
			reviewStep,
		}
	}
	return nil
}

// Wizard is the form state machine for one application. Zero value is not
// usable; construct with [New].
type Wizard struct {
	docType models.DocumentType
	steps   []Step
	current int

	form        map[string]string
	attachments map[string]Attachment

	state       State
	generatedID string

	now func() time.Time
}

// New constructs a wizard for the given document type, positioned on the
// first step with an empty form.
func New(docType models.DocumentType) *Wizard {
	return &Wizard{
		docType:     docType,
		steps:       steps(docType),
		form:        make(map[string]string),
		attachments: make(map[string]Attachment),
		now:         time.Now,
	}
}

// DocumentType returns the document type this wizard collects.
func (w *Wizard) DocumentType() models.DocumentType {
	return w.docType
}

// State returns the lifecycle phase.
func (w *Wizard) State() State {
	return w.state
}

// StepIndex returns the zero-based index of the current step.
func (w *Wizard) StepIndex() int {
	return w.current
}

// StepCount returns the number of form steps.
func (w *Wizard) StepCount() int {
	return len(w.steps)
}

// CurrentStep returns the step the wizard is on.
func (w *Wizard) CurrentStep() Step {
	return w.steps[w.current]
}

// Set stores a form field value. Setting a field from an earlier step is
// allowed; the consolidated map keeps every value for the wizard lifetime.
func (w *Wizard) Set(field, value string) {
	w.form[field] = value
}

// Value returns the stored value of a form field, or "".
func (w *Wizard) Value(field string) string {
	return w.form[field]
}

// Attach records a local file handle for an attachment slot.
func (w *Wizard) Attach(slot string, att Attachment) {
	w.attachments[slot] = att
}

// Attachment returns the handle stored in a slot, if any.
func (w *Wizard) Attachment(slot string) (Attachment, bool) {
	att, ok := w.attachments[slot]
	return att, ok
}

// CanAdvance reports whether every required field of the current step is
// non-blank. Attachments never gate progression.
func (w *Wizard) CanAdvance() bool {
	for _, field := range w.steps[w.current].Required {
		if strings.TrimSpace(w.form[field]) == "" {
			return false
		}
	}
	return true
}

// MissingFields lists the required fields of the current step that are
// still blank, in step order.
func (w *Wizard) MissingFields() []string {
	var missing []string
	for _, field := range w.steps[w.current].Required {
		if strings.TrimSpace(w.form[field]) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// OnFinalStep reports whether the wizard is on its last form step.
func (w *Wizard) OnFinalStep() bool {
	return w.current == len(w.steps)-1
}

// Next advances to the following step. It reports false, without moving,
// when the current step's required fields are incomplete, when the wizard
// is already on the final step, or when it has left the Collecting state.
func (w *Wizard) Next() bool {
	if w.state != Collecting || w.OnFinalStep() || !w.CanAdvance() {
		return false
	}
	w.current++
	return true
}

// Back moves to the previous step. Always allowed while collecting; no
// entered data is lost. Reports false on the first step.
func (w *Wizard) Back() bool {
	if w.state != Collecting || w.current == 0 {
		return false
	}
	w.current--
	return true
}

// BeginSubmit moves the wizard into the Submitting state. It reports false
// unless the wizard is on its final step with every step's required fields
// complete.
func (w *Wizard) BeginSubmit() bool {
	if w.state != Collecting || !w.OnFinalStep() {
		return false
	}
	for i := range w.steps {
		for _, field := range w.steps[i].Required {
			if strings.TrimSpace(w.form[field]) == "" {
				return false
			}
		}
	}
	w.state = Submitting
	return true
}

// FailSubmit returns the wizard to the Collecting state after a failed
// remote create so the user can retry. Data is untouched.
func (w *Wizard) FailSubmit() {
	if w.state == Submitting {
		w.state = Collecting
	}
}

// FinishSubmit records the generated application id and moves to Done.
func (w *Wizard) FinishSubmit(id string) {
	if w.state == Submitting {
		w.generatedID = id
		w.state = Done
	}
}

// GeneratedID returns the id of the created application once Done.
func (w *Wizard) GeneratedID() string {
	return w.generatedID
}

// BuildApplication synthesizes the application record from the collected
// form. The id embeds the last six digits of the submission time in epoch
// milliseconds, the fee is copied from the site configuration, and a single
// history entry documents the submission. Attachments stay local and are
// not reflected in the record.
func (w *Wizard) BuildApplication(cfg models.AppConfig) models.Application {
	submitted := w.now().UTC()

	app := models.Application{
		ID:             GenerateID(w.docType, submitted),
		Type:           w.docType,
		FullName:       strings.TrimSpace(w.form[FieldFullName]),
		PassportNumber: strings.TrimSpace(w.form[FieldPassportNumber]),
		Nationality:    strings.TrimSpace(w.form[FieldNationality]),
		DateOfBirth:    strings.TrimSpace(w.form[FieldDateOfBirth]),
		Gender:         strings.TrimSpace(w.form[FieldGender]),
		Email:          strings.ToLower(strings.TrimSpace(w.form[FieldEmail])),
		Phone:          strings.TrimSpace(w.form[FieldPhone]),
		CurrentAddress: strings.TrimSpace(w.form[FieldCurrentAddress]),
		VietnamAddress: strings.TrimSpace(w.form[FieldVietnamAddress]),
		Details:        w.buildDetails(),
		SubmissionDate: submitted,
		Status:         models.StatusSubmitted,
		PaymentStatus:  models.PaymentPending,
		Fee:            cfg.ServiceFor(w.docType).Fee,
		History: []models.HistoryEntry{{
			Timestamp: submitted,
			Action:    "Application submitted",
			Actor:     "applicant",
		}},
	}

	return app
}

func (w *Wizard) buildDetails() models.ApplicationDetails {
	switch w.docType {
	case models.WorkPermit:
		return models.ApplicationDetails{WorkPermit: &models.WorkPermitDetails{
			Employer: strings.TrimSpace(w.form[FieldEmployer]),
			JobTitle: strings.TrimSpace(w.form[FieldJobTitle]),
		}}
	case models.Visa:
		return models.ApplicationDetails{Visa: &models.VisaDetails{
			VisaType:  strings.TrimSpace(w.form[FieldVisaType]),
			EntryType: strings.TrimSpace(w.form[FieldEntryType]),
			Duration:  strings.TrimSpace(w.form[FieldDuration]),
		}}
	case models.TRC:
		return models.ApplicationDetails{TRC: &models.TRCDetails{
			SponsorName:   strings.TrimSpace(w.form[FieldSponsorName]),
			LicenseNumber: strings.TrimSpace(w.form[FieldLicenseNumber]),
			Duration:      strings.TrimSpace(w.form[FieldDuration]),
		}}
	}
	return models.ApplicationDetails{}
}

// GenerateID builds an application id of the form VN-<tag>-<suffix>, where
// the suffix is the last six digits of t in epoch milliseconds.
func GenerateID(docType models.DocumentType, t time.Time) string {
	return fmt.Sprintf("VN-%s-%06d", docType.Prefix(), t.UnixMilli()%1_000_000)
}
