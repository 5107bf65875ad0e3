package resp

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stellrent/response/logging/logger"
)

func TestVariantDefaults(t *testing.T) {
	tests := []struct {
		intent  Intent
		kind    Kind
		status  int
		message string
	}{
		{MustData(map[string]any{}), KindData, 200, ""},
		{Confirmation(), KindConfirmation, 200, "Request executed successfully"},
		{Created(), KindCreated, 201, "Created"},
		{NoContent(), KindNoContent, 204, ""},
		{BadRequest(), KindBadRequest, 400, "Bad Request"},
		{Unauthorized(), KindUnauthorized, 401, "Unauthorized"},
		{Forbidden(), KindForbidden, 403, "Forbidden"},
		{NotFound(), KindNotFound, 404, "Resource Not Found"},
		{MethodNotAllowed(), KindMethodNotAllowed, 405, "Method not allowed"},
		{Conflict(), KindConflict, 409, "Conflict"},
		{ServerError(), KindServerError, 500, "Internal Server Error"},
		{Error(http.StatusTooManyRequests), KindError, 429, ""},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if tt.intent.Kind() != tt.kind {
				t.Errorf("kind = %v, want %v", tt.intent.Kind(), tt.kind)
			}
			if tt.intent.Status() != tt.status {
				t.Errorf("status = %d, want %d", tt.intent.Status(), tt.status)
			}
			if tt.intent.Message() != tt.message {
				t.Errorf("message = %q, want %q", tt.intent.Message(), tt.message)
			}
		})
	}
}

func TestConstructorsIgnoreIrrelevantOptions(t *testing.T) {
	nf := NotFound(WithStatus(http.StatusTeapot), WithData("x"), WithErrors(FieldError{Msg: "e"}))
	if nf.Status() != http.StatusNotFound {
		t.Errorf("NotFound status = %d", nf.Status())
	}
	if _, ok := nf.Data(); ok {
		t.Error("NotFound carries data")
	}
	if len(nf.Errors()) != 0 {
		t.Error("NotFound carries errors")
	}

	c := Confirmation(WithData("x"))
	if _, ok := c.Data(); ok {
		t.Error("Confirmation carries data")
	}

	d := MustData("x", WithDetails("d"), WithMessage("m"))
	if d.Details() != nil || d.Message() != "" {
		t.Errorf("Data carries envelope fields: %q %v", d.Message(), d.Details())
	}
}

func TestConfirmationStatusOverrideUsesTable(t *testing.T) {
	c := Confirmation(WithStatus(http.StatusCreated))
	if c.Message() != "Created" {
		t.Errorf("message = %q, want Created", c.Message())
	}
	if Confirmation(WithStatus(http.StatusAccepted)).Message() != "" {
		t.Error("unknown status should have no default message")
	}
}

func TestFromStatus(t *testing.T) {
	tests := map[int]Kind{
		200: KindConfirmation,
		201: KindCreated,
		202: KindConfirmation,
		204: KindNoContent,
		400: KindBadRequest,
		401: KindUnauthorized,
		403: KindForbidden,
		404: KindNotFound,
		405: KindMethodNotAllowed,
		409: KindConflict,
		418: KindError,
		500: KindServerError,
		503: KindError,
	}
	for status, kind := range tests {
		r := FromStatus(status, WithStatus(999))
		if r.Kind() != kind {
			t.Errorf("FromStatus(%d) kind = %v, want %v", status, r.Kind(), kind)
		}
		if r.Status() != status {
			t.Errorf("FromStatus(%d) status = %d", status, r.Status())
		}
	}
}

func TestFromStatusDoesNotMutateOptions(t *testing.T) {
	opts := make([]Option, 1, 4)
	opts[0] = WithDetails("d")
	FromStatus(http.StatusAccepted, opts...)
	if opts[:2][1] != nil {
		t.Error("FromStatus wrote into the caller's option slice")
	}
}

func TestErrorsAccessorCopies(t *testing.T) {
	r := Error(http.StatusBadRequest, WithErrors(FieldError{Msg: "a"}))
	errs := r.Errors()
	errs[0].Msg = "changed"
	if r.Errors()[0].Msg != "a" {
		t.Error("Errors() exposes internal slice")
	}
}

func TestWithLogger(t *testing.T) {
	l, _ := bufferLogger()
	if got := NotFound(WithLogger(l)).Logger(); got != l {
		t.Errorf("Logger() = %v, want supplied logger", got)
	}
	if got := NotFound(WithLogger(nil)).Logger(); got != standardLogger() {
		t.Errorf("nil logger should select the standard logger, got %T", got)
	}
	entry := logrus.NewEntry(l)
	if got := NotFound(WithLogger(entry)).Logger(); got != entry {
		t.Errorf("entry logger not kept")
	}
}

func TestInvalidLoggerFallsBackWithWarning(t *testing.T) {
	std := logger.StdLogger()
	var buf bytes.Buffer
	prevOut, prevLevel := std.Out, std.GetLevel()
	std.SetOutput(&buf)
	std.SetLevel(logrus.InfoLevel)
	defer func() {
		std.SetOutput(prevOut)
		std.SetLevel(prevLevel)
	}()

	var invalid *logrus.Logger
	r := BadRequest(WithLogger(invalid))

	if r.Logger() != standardLogger() {
		t.Errorf("Logger() = %T, want standard logger", r.Logger())
	}
	if !strings.Contains(buf.String(), "invalid logger handle") {
		t.Errorf("missing warning, log = %q", buf.String())
	}
	if res := Render(r); res.Status != http.StatusBadRequest {
		t.Errorf("render status = %d", res.Status)
	}
}

func TestKindString(t *testing.T) {
	if KindMethodNotAllowed.String() != "method_not_allowed" {
		t.Errorf("String() = %q", KindMethodNotAllowed.String())
	}
	if Kind(0).String() != "unknown" {
		t.Errorf("zero Kind = %q", Kind(0).String())
	}
}
