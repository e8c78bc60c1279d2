package http

import (
	"net/http"
)

// getServerVersion handles GET /api/version/ with the configured version as
// plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		logger := h.logger.GetChildLogger()
		logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}

// getServerInfo handles GET /api/info.
func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
