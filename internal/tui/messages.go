package tui

import (
	"github.com/vndocs/govportal/models"
)

type verifyDoneMsg struct {
	result models.VerificationResult
}

type submitDoneMsg struct {
	id  string
	err error
}

type consoleLoginMsg struct {
	blocked bool
	err     error
}

// consoleSavedMsg reports the outcome of any console form save; tab is
// where the saved row lives.
type consoleSavedMsg struct {
	id  string
	tab consoleTab
	err error
}

type deletedMsg struct {
	err error
}

type wipeDoneMsg struct {
	failed int
}

type refreshedMsg struct{}

type copiedMsg struct{}
