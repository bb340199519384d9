// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the intake server handlers
// and the client that maps them back to errors.
//
// All Msg* constants are written into HTTP response bodies. The client
// compares response bodies against them, so the wording is part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidSubmission is returned when a submission lacks an ID, has a
	// malformed ID, names another form or carries an empty payload.
	MsgInvalidSubmission = "invalid submission"

	// MsgUnknownForm is returned when the {form} path parameter does not
	// name a catalog definition.
	MsgUnknownForm = "unknown form"

	// MsgUnknownRegion is returned by the communes endpoint for a region
	// missing from the geography table.
	MsgUnknownRegion = "unknown region"

	// MsgSubmissionExists is returned when a submission with the same ID
	// was already accepted.
	MsgSubmissionExists = "submission already exists"

	// MsgInvalidLimit is returned for a non-numeric ?limit= query value.
	MsgInvalidLimit = "invalid limit"

	// MsgTemporarilyUnavailable is returned when the database reported a
	// retryable failure.
	MsgTemporarilyUnavailable = "service temporarily unavailable"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
