package resp

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/ecode"
)

// ContentTypeJSON is the content type of every non-empty response.
const ContentTypeJSON = "application/json"

// Response is a rendered response descriptor ready for transmission.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Header returns the headers implied by the descriptor.
func (r Response) Header() http.Header {
	h := http.Header{}
	if r.ContentType != "" {
		h.Set("Content-Type", r.ContentType)
	}
	return h
}

// envelope fields are declared in wire order.
type envelope struct {
	Message string       `json:"message,omitempty"`
	Details any          `json:"details,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Status  int          `json:"status,omitempty"`
}

// Render maps r to its wire descriptor. It never fails: a payload that
// cannot be encoded is logged and replaced by a 500 envelope.
func Render(r Intent) Response {
	status := r.Status()
	log := r.Logger().WithFields(logrus.Fields{"status": status, "kind": r.kind.String()})

	if status == http.StatusNoContent {
		log.WithField("body", "").Debug("raw response data")
		return Response{Status: status}
	}

	var payload any
	if r.data != nil {
		payload = r.data
	} else {
		payload = r.envelope()
	}

	body, err := encode(payload)
	if err != nil {
		log.WithError(err).Error("failed to encode response body")
		status = http.StatusInternalServerError
		body, _ = encode(envelope{Message: ecode.Fallback(status), Status: status})
	}

	log.WithField("body", string(body)).Debug("raw response data")
	return Response{Status: status, ContentType: ContentTypeJSON, Body: body}
}

// envelope builds the structured body used when no data is present.
func (r Intent) envelope() envelope {
	status := r.Status()
	env := envelope{Message: r.message, Details: r.details}
	if status >= http.StatusBadRequest {
		env.Errors = r.errors
	}

	if env.Message != "" || env.Details != nil || len(env.Errors) > 0 {
		env.Status = status
		return env
	}
	if status >= http.StatusBadRequest {
		return envelope{Message: ecode.Fallback(status), Status: status}
	}
	return env
}

// encode marshals v compactly without HTML escaping or a trailing newline.
// Values implementing json.Marshaler or encoding.TextMarshaler, such as
// time.Time (RFC 3339) and uuid.UUID, render in their canonical text form.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
