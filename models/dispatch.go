// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DispatchPayload is the body sent to the downstream processor when units are
// forwarded.
type DispatchPayload struct {
	// AmountToProcess is the caller's quota, passed through unchanged. It may
	// exceed len(Units) when the store holds fewer records.
	AmountToProcess int `json:"amountToProcess"`

	// Units are the first min(AmountToProcess, total) records in store order.
	Units []Unit `json:"units"`
}

// NewDispatchPayload builds a payload carrying amountToProcess and the first
// min(amountToProcess, len(units)) units. A non-positive quota selects none.
func NewDispatchPayload(amountToProcess int, units []Unit) DispatchPayload {
	n := max(0, min(amountToProcess, len(units)))

	selected := make([]Unit, n)
	copy(selected, units[:n])

	return DispatchPayload{
		AmountToProcess: amountToProcess,
		Units:           selected,
	}
}
