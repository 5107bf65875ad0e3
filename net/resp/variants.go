package resp

import (
	"errors"
	"net/http"
)

// ErrMissingData is returned by Data when no payload is supplied.
var ErrMissingData = errors.New("resp: data response requires a payload")

// newIntent assembles the fields shared by every variant.
func newIntent(kind Kind, status int, o *options) Intent {
	return Intent{
		kind:    kind,
		status:  status,
		message: defaultMessage(kind, o.message, status),
		logger:  o.resolveLogger(),
	}
}

// Data returns an intent whose body is data itself. The status is 200
// unless overridden with WithStatus. A nil data is a caller error.
func Data(data any, opts ...Option) (Intent, error) {
	if data == nil {
		return Intent{}, ErrMissingData
	}
	o := collect(opts)
	r := newIntent(KindData, statusOr(o.status, http.StatusOK), o)
	r.message = ""
	r.data = data
	return r, nil
}

// MustData is like Data but panics when data is nil.
func MustData(data any, opts ...Option) Intent {
	r, err := Data(data, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Confirmation reports that a request succeeded without returning data.
// The status is 200 unless overridden with WithStatus.
func Confirmation(opts ...Option) Intent {
	o := collect(opts)
	r := newIntent(KindConfirmation, statusOr(o.status, http.StatusOK), o)
	r.details = o.details
	return r
}

// Created reports a created resource, optionally returning it as the body.
func Created(opts ...Option) Intent {
	o := collect(opts)
	r := newIntent(KindCreated, http.StatusCreated, o)
	r.data = o.data
	r.details = o.details
	return r
}

// NoContent reports success with an empty body.
func NoContent(opts ...Option) Intent {
	o := collect(opts)
	return Intent{kind: KindNoContent, status: http.StatusNoContent, logger: o.resolveLogger()}
}

// BadRequest reports an invalid request. Details given through
// WithValidation replace those given through WithDetails.
func BadRequest(opts ...Option) Intent {
	o := collect(opts)
	r := newIntent(KindBadRequest, http.StatusBadRequest, o)
	r.details = o.resolveDetails()
	r.errors = o.errors
	return r
}

// Unauthorized reports missing or invalid credentials.
func Unauthorized(opts ...Option) Intent {
	return simpleError(KindUnauthorized, http.StatusUnauthorized, opts)
}

// Forbidden reports that the caller may not perform the request.
func Forbidden(opts ...Option) Intent {
	return simpleError(KindForbidden, http.StatusForbidden, opts)
}

// NotFound reports a missing resource.
func NotFound(opts ...Option) Intent {
	return simpleError(KindNotFound, http.StatusNotFound, opts)
}

// MethodNotAllowed reports an unsupported HTTP method.
func MethodNotAllowed(opts ...Option) Intent {
	return simpleError(KindMethodNotAllowed, http.StatusMethodNotAllowed, opts)
}

// Conflict reports a conflict with the current state of a resource.
func Conflict(opts ...Option) Intent {
	return simpleError(KindConflict, http.StatusConflict, opts)
}

// ServerError reports an unexpected server failure.
func ServerError(opts ...Option) Intent {
	return simpleError(KindServerError, http.StatusInternalServerError, opts)
}

// Error reports an arbitrary error status. Callers pass a status >= 400.
func Error(status int, opts ...Option) Intent {
	o := collect(opts)
	r := newIntent(KindError, status, o)
	r.details = o.resolveDetails()
	r.errors = o.errors
	return r
}

// FromStatus returns the intent of the variant tagged for status. Statuses
// without a dedicated variant map to Error (>= 400) or Confirmation.
func FromStatus(status int, opts ...Option) Intent {
	switch status {
	case http.StatusCreated:
		return Created(opts...)
	case http.StatusNoContent:
		return NoContent(opts...)
	case http.StatusBadRequest:
		return BadRequest(opts...)
	case http.StatusUnauthorized:
		return Unauthorized(opts...)
	case http.StatusForbidden:
		return Forbidden(opts...)
	case http.StatusNotFound:
		return NotFound(opts...)
	case http.StatusMethodNotAllowed:
		return MethodNotAllowed(opts...)
	case http.StatusConflict:
		return Conflict(opts...)
	case http.StatusInternalServerError:
		return ServerError(opts...)
	}
	if status >= http.StatusBadRequest {
		return Error(status, opts...)
	}
	return Confirmation(append(append([]Option(nil), opts...), WithStatus(status))...)
}

func simpleError(kind Kind, status int, opts []Option) Intent {
	o := collect(opts)
	r := newIntent(kind, status, o)
	r.details = o.details
	return r
}

func statusOr(status, def int) int {
	if status == 0 {
		return def
	}
	return status
}
