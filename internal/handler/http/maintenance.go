// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// deleteOldTrash handles GET /api/delete-old-trash.
//
// 200 {"message":"Old trashed notes deleted","count":N}
// 500 {"error":"<cause>"}
func (h *Handler) deleteOldTrash(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count, err := h.services.MaintenanceService.PurgeOldTrash(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteOldTrash").Msg("purge failed")
		h.writeJSON(w, r, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, models.PurgeResponse{Message: app.MsgOldTrashDeleted, Count: count}, http.StatusOK)
}

// pingDatabase handles POST /api/ping-database.
//
// 200 {"status":"success","message":"Database pinged successfully","timestamp":"<RFC3339>"}
// 500 {"error":"Unexpected error occurred","details":"<cause>"}
func (h *Handler) pingDatabase(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.MaintenanceService.PingDatabase(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.pingDatabase").Msg("ping failed")
		h.writeJSON(w, r, models.ErrorResponse{Error: app.MsgUnexpectedError, Details: err.Error()}, http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, r, models.PingResponse{
		Status:    app.MsgPingStatusSuccess,
		Message:   app.MsgDatabasePinged,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error writing response")
	}
}
