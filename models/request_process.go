// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

// ProcessUnitsRequest is the inbound payload of a single invocation.
//
// Both fields are kept as raw JSON: the caller may send values of any JSON
// type, and a wrong type must be reported as a validation failure with a
// fixed message rather than as a decoding error. Use [ProcessUnitsRequest.Amount]
// and [ProcessUnitsRequest.IsDryRun] to read typed values.
type ProcessUnitsRequest struct {
	// AmountToProcess is the caller's quota. Must be a positive integral
	// JSON number.
	AmountToProcess json.RawMessage `json:"amountToProcess,omitempty"`

	// DryRun selects whether the selected units are forwarded to the
	// processor. Must be a JSON boolean.
	DryRun json.RawMessage `json:"dryRun,omitempty"`
}

// NewProcessUnitsRequest builds a well-typed request. It is a convenience for
// callers that already hold typed values (tests, local tooling).
func NewProcessUnitsRequest(amountToProcess int, dryRun bool) ProcessUnitsRequest {
	return ProcessUnitsRequest{
		AmountToProcess: json.RawMessage(strconv.Itoa(amountToProcess)),
		DryRun:          json.RawMessage(strconv.FormatBool(dryRun)),
	}
}

// Amount returns amountToProcess as an int. ok is false when the field is
// missing, is not a JSON number, is not integral or is not greater than zero.
func (r ProcessUnitsRequest) Amount() (amount int, ok bool) {
	raw := bytes.TrimSpace(r.AmountToProcess)
	// json.Number also accepts quoted numbers, so only bare literals pass
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, false
	}

	var number json.Number
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&number); err != nil {
		return 0, false
	}

	value, err := strconv.ParseFloat(number.String(), 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(value, 1)) {
		return 0, false
	}
	if math.IsNaN(value) || value <= 0 || value != math.Trunc(value) {
		return 0, false
	}
	// quotas larger than any possible store size behave as "everything",
	// including literals beyond float64 range
	if value >= float64(math.MaxInt) {
		return math.MaxInt, true
	}

	return int(value), true
}

// IsDryRun returns dryRun as a bool. ok is false when the field is missing or
// is not a JSON boolean.
func (r ProcessUnitsRequest) IsDryRun() (dryRun bool, ok bool) {
	switch string(bytes.TrimSpace(r.DryRun)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}
