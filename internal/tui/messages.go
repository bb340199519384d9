package tui

import "github.com/MKhiriev/go-form-keeper/models"

// NavigateTo asks the root model to switch pages.
type NavigateTo struct {
	Page string
}

type submitResultMsg struct {
	formID string
	result models.SubmissionResult
}

type historyLoadedMsg struct {
	page    string
	records []models.Record
	err     error
}

type copiedMsg struct {
	id  string
	err error
}
