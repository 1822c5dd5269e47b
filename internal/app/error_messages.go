// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// unit dispatcher transports and services.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or log entries to describe the outcome of an invocation.
// Keeping them in one place ensures consistent wording for both the Lambda and
// the HTTP front-ends.
package app

const (
	// MsgUnitsProcessed is the message of every successful invocation.
	MsgUnitsProcessed = "Units processed successfully"

	// MsgErrorProcessingUnits is the message of every failed invocation.
	// The triggering error text is carried separately in the "error" field.
	MsgErrorProcessingUnits = "Error processing units"

	// MsgUnknownError replaces the error text when the failure carries no
	// message (nil error, empty message or a recovered non-error panic).
	MsgUnknownError = "Unknown error"

	// MsgInvalidAmountToProcess is reported when amountToProcess is missing,
	// not a number or not positive.
	MsgInvalidAmountToProcess = "amountToProcess must be a positive number"

	// MsgInvalidDryRun is reported when dryRun is missing or not a boolean.
	MsgInvalidDryRun = "dryRun must be a boolean value"

	// MsgInvalidRequestBody is the prefix used when the invocation payload is
	// not a JSON object at all.
	MsgInvalidRequestBody = "invalid request body"
)
