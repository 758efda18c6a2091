// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/internal/utils"
)

// getServerInfo answers with the full build metadata as JSON.
func (h *Handler) getServerInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	info := h.services.AppInfoService.GetAppInfo(r.Context())
	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getServerInfo").Msg("error writing build info")
	}
}
