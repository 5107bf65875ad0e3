package resp

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/ecode"
	"github.com/stellrent/response/validator"
)

// Kind tags the outcome an Intent communicates.
type Kind int

const (
	KindData Kind = iota + 1
	KindConfirmation
	KindCreated
	KindNoContent
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindMethodNotAllowed
	KindConflict
	KindServerError
	KindError
)

var kindNames = map[Kind]string{
	KindData:             "data",
	KindConfirmation:     "confirmation",
	KindCreated:          "created",
	KindNoContent:        "no_content",
	KindBadRequest:       "bad_request",
	KindUnauthorized:     "unauthorized",
	KindForbidden:        "forbidden",
	KindNotFound:         "not_found",
	KindMethodNotAllowed: "method_not_allowed",
	KindConflict:         "conflict",
	KindServerError:      "server_error",
	KindError:            "error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// FieldError is a structured error record: a field location and a message.
type FieldError = validator.Violation

// Intent describes a response outcome. It is immutable once built; use the
// variant constructors to create one.
type Intent struct {
	kind    Kind
	status  int
	message string
	data    any
	details any
	errors  []FieldError
	logger  logrus.FieldLogger
}

// Kind returns the variant tag.
func (r Intent) Kind() Kind { return r.kind }

// Status returns the HTTP status code. The zero Intent reports 200.
func (r Intent) Status() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// Message returns the envelope message, "" when absent.
func (r Intent) Message() string { return r.message }

// Data returns the raw payload and whether one is present.
func (r Intent) Data() (any, bool) { return r.data, r.data != nil }

// Details returns the free-form details, nil when absent.
func (r Intent) Details() any { return r.details }

// Errors returns a copy of the structured error records.
func (r Intent) Errors() []FieldError {
	if len(r.errors) == 0 {
		return nil
	}
	return append([]FieldError(nil), r.errors...)
}

// Logger returns the diagnostic sink, the standard logger when unset.
func (r Intent) Logger() logrus.FieldLogger {
	if r.logger == nil {
		return standardLogger()
	}
	return r.logger
}

// WithMessage returns a copy of r with its message replaced. An empty
// message restores the default for the status.
func (r Intent) WithMessage(msg string) Intent {
	r.message = defaultMessage(r.kind, msg, r.Status())
	return r
}

// defaultMessage resolves the message an intent of kind carries.
func defaultMessage(kind Kind, msg string, status int) string {
	if msg != "" {
		return msg
	}
	switch kind {
	case KindData, KindNoContent:
		return ""
	}
	return ecode.Text(status)
}
