// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package submission gates and sequences the submit workflow of a form.
//
// A Controller owns a looplab/fsm state machine:
//
//	idle -> validating -> blocked -> idle
//	idle -> validating -> submitting -> succeeded -> idle
//	idle -> validating -> submitting -> failed -> idle
//
// Begin and Complete touch the form and must run on the host's event loop.
// Await only talks to the Submitter and may run on any goroutine.
package submission

//go:generate mockgen -source=interfaces.go -destination=../mock/submission_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/models"
)

// Submitter delivers an accepted submission somewhere durable.
type Submitter interface {

	// Submit delivers sub and returns the receipt issued by the receiver.
	// Implementations must honour ctx cancellation.
	Submit(ctx context.Context, sub models.Submission) (models.Receipt, error)
}

// Notifier presents form-level messages to the user.
type Notifier interface {
	Notify(n models.Notification)
}

// Navigator moves the host to a destination view by logical name.
type Navigator interface {
	Navigate(destination string)
}
