package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"admin", "admin"},
		{"practician", "practician"},
		{"", "practician"},
		{"superuser", "practician"},
		{"ADMIN", "practician"},
	}
	for _, tt := range tests {
		if got := NormalizeRole(tt.raw); got != tt.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func authProbe(t *testing.T) (*gin.Engine, *map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	seen := map[string]interface{}{}
	r := gin.New()
	r.GET("/probe", AuthMiddleware(), func(c *gin.Context) {
		seen["email"] = c.GetString("email")
		seen["role"] = c.GetString("role")
		seen["first_name"] = c.GetString("first_name")
		seen["user_id"] = c.GetUint("user_id")
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r, _ := authProbe(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_MalformedBearer(t *testing.T) {
	r, _ := authProbe(t)
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r, _ := authProbe(t)
	token := signed(t, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_ClaimsExtracted(t *testing.T) {
	r, seen := authProbe(t)
	token := signed(t, jwt.MapClaims{
		"user_id":    float64(42),
		"email":      "a@x.com",
		"first_name": "Anna",
		"role":       "admin",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if (*seen)["email"] != "a@x.com" || (*seen)["first_name"] != "Anna" {
		t.Errorf("claims = %v", *seen)
	}
	if (*seen)["role"] != "admin" {
		t.Errorf("role = %v, want admin", (*seen)["role"])
	}
	if (*seen)["user_id"] != uint(42) {
		t.Errorf("user_id = %v, want 42", (*seen)["user_id"])
	}
}

func TestAuthMiddleware_RoleNormalizedToPractician(t *testing.T) {
	r, seen := authProbe(t)
	token := signed(t, jwt.MapClaims{
		"email": "a@x.com",
		"role":  "something-else",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if (*seen)["role"] != "practician" {
		t.Errorf("role = %v, want practician", (*seen)["role"])
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.GET("/admin", AuthMiddleware(), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	practician := signed(t, jwt.MapClaims{
		"email": "p@x.com",
		"role":  "practician",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+practician)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("practician on admin route: status = %d, want 403", w.Code)
	}

	admin := signed(t, jwt.MapClaims{
		"email": "a@x.com",
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}
}
