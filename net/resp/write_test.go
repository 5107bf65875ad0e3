package resp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := Write(rec, NotFound()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeJSON {
		t.Errorf("content type = %q", ct)
	}
	if rec.Body.String() != `{"message":"Resource Not Found","status":404}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestWriteNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "text/plain")
	if err := Write(rec, NoContent()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Errorf("code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "" {
		t.Errorf("content type = %q, want none", ct)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

type failingWriter struct {
	header http.Header
}

func (w *failingWriter) Header() http.Header       { return w.header }
func (w *failingWriter) WriteHeader(int)           {}
func (w *failingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestWriteReportsTransportErrors(t *testing.T) {
	err := Write(&failingWriter{header: http.Header{}}, Confirmation())
	if err == nil {
		t.Fatal("expected error")
	}
}

func newGinEngine(handler gin.HandlerFunc, after *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.GET("/", handler, func(c *gin.Context) { *after = true })
	return e
}

func TestJSONGin(t *testing.T) {
	var after bool
	e := newGinEngine(func(c *gin.Context) {
		JSON(c, MustData(map[string]any{"id": 1}))
	}, &after)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != `{"id":1}` {
		t.Errorf("got %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeJSON {
		t.Errorf("content type = %q", ct)
	}
	if !after {
		t.Error("success response aborted the chain")
	}
}

func TestJSONGinErrorAborts(t *testing.T) {
	var after bool
	e := newGinEngine(func(c *gin.Context) {
		JSON(c, Forbidden(WithDetails("admins only")))
	}, &after)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusForbidden {
		t.Errorf("code = %d", rec.Code)
	}
	if rec.Body.String() != `{"message":"Forbidden","details":"admins only","status":403}` {
		t.Errorf("body = %s", rec.Body.String())
	}
	if after {
		t.Error("error response did not abort the chain")
	}
}

func TestJSONGinNoContent(t *testing.T) {
	var after bool
	e := newGinEngine(func(c *gin.Context) {
		JSON(c, NoContent())
	}, &after)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("code = %d", rec.Code)
	}
	if rec.Body.Len() != 0 || rec.Header().Get("Content-Type") != "" {
		t.Errorf("unexpected body %q / content type %q", rec.Body.String(), rec.Header().Get("Content-Type"))
	}
}
