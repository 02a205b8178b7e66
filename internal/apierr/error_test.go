package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestKindHTTPStatus_Table(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindRouteMiss, http.StatusNotFound},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindTokenExpired, http.StatusUnauthorized},
		{KindValidation, http.StatusBadRequest},
		{KindBodyParse, http.StatusBadRequest},
		{KindMethodNotAllowed, http.StatusMethodNotAllowed},
		{KindInternalServer, http.StatusInternalServerError},
		{KindUnclassified, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.kind.HTTPStatus(); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestConstructors_DefaultMessages(t *testing.T) {
	cases := []struct {
		err        *Error
		wantStatus int
		wantMsg    string
	}{
		{Unauthorized(), http.StatusUnauthorized, "unauthorized"},
		{TokenExpired(), http.StatusUnauthorized, "tokenExpired"},
		{NotFound(), http.StatusNotFound, "notFound"},
		{Internal(), http.StatusInternalServerError, "internalServerError"},
		{Validation(""), http.StatusBadRequest, "validationError"},
		{RouteMiss(), http.StatusNotFound, "notFound"},
		{MethodNotAllowed(), http.StatusMethodNotAllowed, "methodNotAllowed"},
		{BodyParse(nil), http.StatusBadRequest, "badRequest"},
	}
	for _, tc := range cases {
		status, env := tc.err.Render()
		if status != tc.wantStatus {
			t.Errorf("%s: status = %d, want %d", tc.err.Kind, status, tc.wantStatus)
		}
		if env.Message != tc.wantMsg {
			t.Errorf("%s: message = %q, want %q", tc.err.Kind, env.Message, tc.wantMsg)
		}
		if env.Status != StatusError {
			t.Errorf("%s: envelope status = %q, want %q", tc.err.Kind, env.Status, StatusError)
		}
		if env.Data != nil {
			t.Errorf("%s: data = %v, want nil", tc.err.Kind, env.Data)
		}
	}
}

func TestValidation_MessageOverride(t *testing.T) {
	status, env := Validation("title is required").Render()
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if env.Message != "title is required" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestBodyParse_CauseEchoedInMessage(t *testing.T) {
	status, env := BodyParse(errors.New("unexpected token")).Render()
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d", status)
	}
	if env.Message != "validationError - unexpected token" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestRender_Idempotent(t *testing.T) {
	e := Validation("price must be positive")
	s1, env1 := e.Render()
	s2, env2 := e.Render()
	b1, _ := json.Marshal(env1)
	b2, _ := json.Marshal(env2)
	if s1 != s2 || string(b1) != string(b2) {
		t.Fatalf("render not idempotent: %d %s vs %d %s", s1, b1, s2, b2)
	}
}

func TestEnvelope_ErrorDataSerializesAsNull(t *testing.T) {
	_, env := NotFound().Render()
	b, err := json.Marshal(env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"status":"error","message":"notFound","data":null}`
	if string(b) != want {
		t.Fatalf("body = %s, want %s", b, want)
	}
}

func TestEnvelope_Success(t *testing.T) {
	env := Success("paintingDeleted", nil)
	if env.Status != StatusSuccess || env.Message != "paintingDeleted" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestError_ErrorStringAndUnwrap(t *testing.T) {
	cause := errors.New("missing field `price`")
	e := BodyParse(cause)
	if !errors.Is(e, cause) {
		t.Fatalf("Unwrap lost the cause")
	}
	if e.Error() == "" {
		t.Fatalf("empty error string")
	}
}
