package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rosemary-art/go-gallery-backend/internal/apierr"
)

func dispatchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorDispatch(apierr.NewDispatcher(zerolog.Nop())))
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apierr.Envelope {
	t.Helper()
	var env apierr.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("json: %v (%s)", err, w.Body.String())
	}
	return env
}

func TestErrorDispatch_RendersRaisedKind(t *testing.T) {
	r := dispatchRouter()
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apierr.NotFound())
	})

	w := doGet(r, "/missing")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Status != apierr.StatusError || env.Message != "notFound" || env.Data != nil {
		t.Fatalf("envelope = %+v", env)
	}
	if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
		t.Fatalf("Cache-Control = %q", cc)
	}
}

func TestErrorDispatch_SkipsWhenResponseWritten(t *testing.T) {
	r := dispatchRouter()
	r.GET("/partial", func(c *gin.Context) {
		c.JSON(http.StatusOK, apierr.Success("success", nil))
		_ = c.Error(errors.New("logged but not rendered"))
	})

	w := doGet(r, "/partial")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Status != apierr.StatusSuccess {
		t.Fatalf("success body clobbered: %+v", env)
	}
}

func TestErrorDispatch_UnclassifiedBecomes500(t *testing.T) {
	r := dispatchRouter()
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("persistence timeout"))
	})

	w := doGet(r, "/boom")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "internalServerError" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestErrorDispatch_RecoveredPanicBecomes500(t *testing.T) {
	r := dispatchRouter()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	w := doGet(r, "/panic")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "internalServerError" || env.Data != nil {
		t.Fatalf("envelope = %+v", env)
	}
}
