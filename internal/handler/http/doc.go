// Package http implements the HTTP transport of the build metadata API.
//
// Routes are served by chi. Every request gets a trace id, an access log
// line and X-App-* response headers describing the running build before it
// is delegated to the service layer.
package http
