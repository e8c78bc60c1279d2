package http

import (
	"net/http"

	"github.com/google/uuid"
)

// traceIDHeader carries the id correlating a scheduler call with its log
// lines. Incoming values are kept, otherwise a new one is issued.
const traceIDHeader = "X-Trace-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(h.logger.WithTraceID(r.Context(), traceID)))
	})
}
