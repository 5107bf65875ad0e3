package ecode

import "net/http"

// FallbackMessage is used for error envelopes whose status has no entry.
const FallbackMessage = "Error"

var messages = map[int]string{
	http.StatusOK:                  "Request executed successfully",
	http.StatusCreated:             "Created",
	http.StatusNoContent:           "",
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Resource Not Found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusConflict:            "Conflict",
	http.StatusInternalServerError: "Internal Server Error",
}

// Lookup returns the default message for status and whether the table has a
// non-empty entry for it.
func Lookup(status int) (string, bool) {
	msg, ok := messages[status]
	return msg, ok && msg != ""
}

// Text returns the default message for status, or "" if there is none.
func Text(status int) string {
	msg, _ := Lookup(status)
	return msg
}

// Fallback returns the default message for status, or FallbackMessage.
func Fallback(status int) string {
	if msg, ok := Lookup(status); ok {
		return msg
	}
	return FallbackMessage
}
