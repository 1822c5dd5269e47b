// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-unit-dispatcher/internal/handler/invocation"
	"github.com/MKhiriev/go-unit-dispatcher/internal/logger"
	"github.com/MKhiriev/go-unit-dispatcher/internal/service"
	"github.com/MKhiriev/go-unit-dispatcher/internal/utils"
	"github.com/MKhiriev/go-unit-dispatcher/models"
)

// processUnits serves POST /api/units/process. Every failure, including a
// panic inside the pipeline, is answered with the 500 failure body.
func (h *Handler) processUnits(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	defer func() {
		if recovered := recover(); recovered != nil {
			log.Error().Any("panic", recovered).Msg("panic while processing units")
			h.writeOutcome(w, r, models.ProcessUnitsResult{}, invocation.PanicError(recovered))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeOutcome(w, r, models.ProcessUnitsResult{}, service.InvalidArgument(err))
		return
	}

	request, err := invocation.DecodeRequest(body)
	if err != nil {
		h.writeOutcome(w, r, models.ProcessUnitsResult{}, err)
		return
	}

	result, err := h.services.UnitService.ProcessUnits(r.Context(), request)
	h.writeOutcome(w, r, result, err)
}

func (h *Handler) writeOutcome(w http.ResponseWriter, r *http.Request, result models.ProcessUnitsResult, err error) {
	status, body := invocation.Respond(result, err)
	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Msg("error writing response")
	}
}
