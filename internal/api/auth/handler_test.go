package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier-app/config"
	"atelier-app/database"
	"atelier-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&users.User{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	database.DB = db

	r := gin.New()
	r.POST("/register", Register)
	r.POST("/login", Login)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenClaims(t *testing.T, w *httptest.ResponseRecorder) jwt.MapClaims {
	t.Helper()
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token in response: %s", w.Body.String())
	}
	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.JWT_SECRET), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	return parsed.Claims.(jwt.MapClaims)
}

func TestRegister(t *testing.T) {
	r := setupAuthRouter(t)

	w := postJSON(t, r, "/register", gin.H{
		"firstName": "Anna",
		"lastName":  "Berger",
		"email":     "anna@x.com",
		"password":  "atelier2024",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	claims := tokenClaims(t, w)
	if claims["email"] != "anna@x.com" || claims["first_name"] != "Anna" {
		t.Errorf("claims = %v", claims)
	}
	if claims["role"] != users.RolePractician {
		t.Errorf("role = %v, want practician", claims["role"])
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	r := setupAuthRouter(t)

	for _, pw := range []string{"short1", "lettersonly", "12345678"} {
		w := postJSON(t, r, "/register", gin.H{
			"firstName": "A", "lastName": "B", "email": "a@x.com", "password": pw,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("password %q: status = %d, want 400", pw, w.Code)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r := setupAuthRouter(t)

	body := gin.H{"firstName": "A", "lastName": "B", "email": "a@x.com", "password": "atelier2024"}
	if w := postJSON(t, r, "/register", body); w.Code != http.StatusCreated {
		t.Fatalf("first register: status = %d", w.Code)
	}
	if w := postJSON(t, r, "/register", body); w.Code != http.StatusConflict {
		t.Errorf("second register: status = %d, want 409", w.Code)
	}
}

func TestChangePassword(t *testing.T) {
	r := setupAuthRouter(t)
	r.POST("/change-password", func(c *gin.Context) {
		c.Set("email", "a@x.com")
		ChangePassword(c)
	})

	body := gin.H{"firstName": "A", "lastName": "B", "email": "a@x.com", "password": "atelier2024"}
	if w := postJSON(t, r, "/register", body); w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d", w.Code)
	}

	w := postJSON(t, r, "/change-password", gin.H{"oldPassword": "wrong1234", "newPassword": "newpass2024"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong old password: status = %d, want 401", w.Code)
	}

	w = postJSON(t, r, "/change-password", gin.H{"oldPassword": "atelier2024", "newPassword": "weak"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("weak new password: status = %d, want 400", w.Code)
	}

	w = postJSON(t, r, "/change-password", gin.H{"oldPassword": "atelier2024", "newPassword": "newpass2024"})
	if w.Code != http.StatusOK {
		t.Fatalf("change password: status = %d (body %s)", w.Code, w.Body.String())
	}

	if w := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "newpass2024"}); w.Code != http.StatusOK {
		t.Errorf("login with new password: status = %d", w.Code)
	}
	if w := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "atelier2024"}); w.Code != http.StatusUnauthorized {
		t.Errorf("login with old password: status = %d, want 401", w.Code)
	}
}

func TestLogin(t *testing.T) {
	r := setupAuthRouter(t)

	body := gin.H{"firstName": "A", "lastName": "B", "email": "a@x.com", "password": "atelier2024"}
	if w := postJSON(t, r, "/register", body); w.Code != http.StatusCreated {
		t.Fatalf("register: status = %d", w.Code)
	}

	w := postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "atelier2024"})
	if w.Code != http.StatusOK {
		t.Fatalf("login: status = %d (body %s)", w.Code, w.Body.String())
	}
	claims := tokenClaims(t, w)
	if claims["email"] != "a@x.com" {
		t.Errorf("claims = %v", claims)
	}

	w = postJSON(t, r, "/login", gin.H{"email": "a@x.com", "password": "wrongpass1"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password: status = %d, want 401", w.Code)
	}

	w = postJSON(t, r, "/login", gin.H{"email": "nobody@x.com", "password": "atelier2024"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown account: status = %d, want 401", w.Code)
	}
}
