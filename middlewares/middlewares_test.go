package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CPU-commits/Intranet_BCatalog/models"
	"github.com/CPU-commits/Intranet_BCatalog/services"
	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const testSecret = "secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret, role string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &services.Claims{
		ID:   "65a0c0ffee0000000000beef",
		Role: role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expiresAt.Unix(),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}
	return signed
}

func newRouter(roles []string) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/admin", JWTMiddleware(testSecret), RolesMiddleware(roles), func(ctx *gin.Context) {
		claims, _ := services.NewClaimsFromContext(ctx)
		ctx.String(http.StatusOK, claims.ID)
	})
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTMiddleware(t *testing.T) {
	router := newRouter([]string{models.ADMIN})
	hour := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"garbage token", "abc.def.ghi", http.StatusUnauthorized},
		{"wrong secret", signToken(t, "other", models.ADMIN, hour), http.StatusUnauthorized},
		{"expired", signToken(t, testSecret, models.ADMIN, time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"wrong role", signToken(t, testSecret, models.USER, hour), http.StatusForbidden},
		{"admin", signToken(t, testSecret, models.ADMIN, hour), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, tt.token)
			if rec.Code != tt.want {
				t.Fatalf("expected status %d, got %d (%s)", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestJWTMiddlewareSetsClaims(t *testing.T) {
	router := newRouter([]string{models.ADMIN, models.USER})
	rec := doRequest(router, signToken(t, testSecret, models.USER, time.Now().Add(time.Hour)))
	if rec.Code != http.StatusOK || rec.Body.String() != "65a0c0ffee0000000000beef" {
		t.Fatalf("unexpected response %d %s", rec.Code, rec.Body.String())
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	router := newRouter([]string{models.ADMIN})

	rec := doRequest(router, "")
	if rec.Header().Get(REQUEST_ID_HEADER) == "" {
		t.Fatal("expected generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(REQUEST_ID_HEADER, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(REQUEST_ID_HEADER); got != "abc-123" {
		t.Fatalf("expected propagated request id, got %q", got)
	}
}
