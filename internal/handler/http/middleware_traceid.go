package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-unit-dispatcher/internal/utils"
)

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.HeaderTraceID)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)

		w.Header().Set(utils.HeaderTraceID, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
