package http

import (
	"net/http"

	"github.com/MKhiriev/go-unit-dispatcher/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	versionInfo := h.services.AppInfoService.GetVersionInfo(r.Context())

	utils.WriteJSON(w, versionInfo, http.StatusOK)
}
