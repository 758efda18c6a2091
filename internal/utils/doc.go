// Package utils provides general-purpose helpers used across the
// application: JSON response writing, the shared HTTP client and trace
// identifier generation.
package utils
