package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/rosemary-art/go-gallery-backend/internal/apierr"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func authRouter(onSuccess gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorDispatch(apierr.NewDispatcher(zerolog.Nop())))
	r.Use(JWTAuth(testSecret))
	r.GET("/secure", onSuccess)
	return r
}

func doAuthGet(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_ValidTokenSetsUserID(t *testing.T) {
	var gotUser string
	r := authRouter(func(c *gin.Context) {
		gotUser = c.GetString("userID")
		c.JSON(http.StatusOK, apierr.Success("success", nil))
	})

	w := doAuthGet(r, "Bearer "+signToken(t, testSecret, time.Hour))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if gotUser != "user-1" {
		t.Fatalf("userID = %q", gotUser)
	}
}

func TestJWTAuth_MissingToken(t *testing.T) {
	r := authRouter(func(c *gin.Context) { t.Fatal("handler must not run") })

	w := doAuthGet(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "unauthorized" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	r := authRouter(func(c *gin.Context) { t.Fatal("handler must not run") })

	w := doAuthGet(r, "Bearer "+signToken(t, []byte("other-secret"), time.Hour))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "unauthorized" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestJWTAuth_ExpiredTokenIsDistinct(t *testing.T) {
	r := authRouter(func(c *gin.Context) { t.Fatal("handler must not run") })

	w := doAuthGet(r, "Bearer "+signToken(t, testSecret, -time.Minute))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "tokenExpired" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	r := authRouter(func(c *gin.Context) { t.Fatal("handler must not run") })

	for _, hdr := range []string{"Bearer", "Basic dXNlcg==", "Bearer  "} {
		w := doAuthGet(r, hdr)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%q: status = %d", hdr, w.Code)
		}
	}
}
