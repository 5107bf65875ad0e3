// Package ecode holds the default human-readable messages attached to
// response envelopes, keyed by HTTP status code.
//
// The table is built once at package initialization and never mutated, so
// lookups are safe from any goroutine without locking.
//
// # Lookups
//
//	ecode.Text(http.StatusNotFound)
//	// Returns: "Resource Not Found"
//
//	ecode.Text(http.StatusNoContent)
//	// Returns: "" (no-content responses carry no message)
//
//	msg, ok := ecode.Lookup(http.StatusTeapot)
//	// Returns: "", false
//
// # Fallback
//
// Error envelopes that would otherwise be empty use Fallback, which never
// returns an empty string:
//
//	ecode.Fallback(http.StatusTeapot)
//	// Returns: "Error"
package ecode
