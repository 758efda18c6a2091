// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// Response headers describing the build that served the request.
const (
	HeaderAppName    = "X-App-Name"
	HeaderAppVersion = "X-App-Version"
	HeaderAppBuild   = "X-App-Build"
)

// withBuildHeaders stamps every response with the name, version and build
// of the running application. Empty values are left out.
func (h *Handler) withBuildHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := h.services.AppInfoService.GetAppInfo(r.Context())

		for header, value := range map[string]string{
			HeaderAppName:    info.Name,
			HeaderAppVersion: info.Version,
			HeaderAppBuild:   info.Build,
		} {
			if value != "" {
				w.Header().Set(header, value)
			}
		}

		next.ServeHTTP(w, r)
	})
}
