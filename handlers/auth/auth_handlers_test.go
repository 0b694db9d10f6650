package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/config"
	"api/database"
	"api/models"
	"api/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.JWTSecret = "test-secret"
	config.TokenExpiryHours = 24

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Competition{},
		&models.Participant{},
		&models.Prize{},
		&models.PasswordReset{},
	); err != nil {
		t.Fatalf("failed automigrating models: %v", err)
	}
	database.DB = db

	for _, name := range []string{models.RoleAdmin, models.RoleSchoolStudent, models.RoleCollegeStudent} {
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			t.Fatalf("failed seeding role %s: %v", name, err)
		}
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func seedUser(t *testing.T, name, phone, email, password, roleName string) models.User {
	t.Helper()

	var role models.Role
	require.NoError(t, database.DB.Where("name = ?", roleName).First(&role).Error)

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.User{Name: name, Phone: phone, Password: hash, RoleID: role.ID}
	if email != "" {
		user.Email = &email
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(resp *http.Response) string {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "auth_token" {
			return cookie.Value
		}
	}
	return ""
}

func TestRegister(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("registers with phone only", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"name":     "Asha",
			"phone":    "1111111111",
			"password": "long-enough-password",
			"role":     models.RoleSchoolStudent,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var user models.User
		require.NoError(t, database.DB.Where("phone = ?", "1111111111").First(&user).Error)
		assert.Nil(t, user.Email)
		assert.NotEqual(t, "long-enough-password", user.Password) // stored hashed
	})

	t.Run("rejects duplicate phone", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"name":     "Imposter",
			"phone":    "1111111111",
			"password": "long-enough-password",
			"role":     models.RoleSchoolStudent,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrPhoneInUse)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"name":     "Nobody",
			"phone":    "2222222222",
			"password": "long-enough-password",
			"role":     "superuser",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrInvalidRole)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/register", gin.H{
			"name":     "Short",
			"phone":    "3333333333",
			"password": "short",
			"role":     models.RoleSchoolStudent,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLogin(t *testing.T) {
	router := setupTestRouter(t)
	seedUser(t, "Asha", "1111111111", "asha@example.com", "correct-password", models.RoleSchoolStudent)

	t.Run("logs in by phone and sets the session cookie", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"phone":    "1111111111",
			"password": "correct-password",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		token := sessionCookie(w.Result())
		assert.NotEmpty(t, token)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		role, ok := user["role"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, models.RoleSchoolStudent, role["name"])
		assert.Empty(t, user["password"])
	})

	t.Run("logs in by email", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"email":    "asha@example.com",
			"password": "correct-password",
		})
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("unknown user is 404", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"phone":    "0000000000",
			"password": "whatever-password",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrUserNotFound)
	})

	t.Run("wrong password is 400 without a cookie", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"phone":    "1111111111",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrInvalidCredentials)
		assert.Empty(t, sessionCookie(w.Result()))
	})

	t.Run("missing identifier is 400", func(t *testing.T) {
		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"password": "correct-password",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrIdentifierRequired)
	})
}

func TestLoginRateLimiting(t *testing.T) {
	router := setupTestRouter(t)
	seedUser(t, "Limited", "5555555555", "", "correct-password", models.RoleSchoolStudent)

	// Five failures trip the first cooldown for this identifier
	for i := 0; i < 5; i++ {
		w := postJSON(t, router, "/api/v1/auth/login", gin.H{
			"phone":    "5555555555",
			"password": "wrong-password",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"phone":    "5555555555",
		"password": "correct-password",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), ErrTooManyAttempts)
}

func TestUserInfo(t *testing.T) {
	router := setupTestRouter(t)
	seedUser(t, "Asha", "1111111111", "", "correct-password", models.RoleSchoolStudent)

	login := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"phone":    "1111111111",
		"password": "correct-password",
	})
	require.Equal(t, http.StatusOK, login.Code)
	token := sessionCookie(login.Result())
	require.NotEmpty(t, token)

	t.Run("returns the caller with role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/user-info", nil)
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Asha", body["name"])
	})

	t.Run("rejects missing and garbage tokens", func(t *testing.T) {
		for _, token := range []string{"", "not-a-jwt"} {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/user-info", nil)
			if token != "" {
				req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		}
	})
}

func TestAuthorize(t *testing.T) {
	router := setupTestRouter(t)
	seedUser(t, "Asha", "1111111111", "", "correct-password", models.RoleSchoolStudent)

	login := postJSON(t, router, "/api/v1/auth/login", gin.H{
		"phone":    "1111111111",
		"password": "correct-password",
	})
	require.Equal(t, http.StatusOK, login.Code)
	token := sessionCookie(login.Result())

	authorize := func(tag, token string) AuthorizeResponse {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/authorize?tag="+tag, nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp AuthorizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	t.Run("anonymous caller", func(t *testing.T) {
		assert.Equal(t, AuthorizeResponse{Decision: "allow"}, authorize("public", ""))
		assert.Equal(t, AuthorizeResponse{Decision: "redirect_login", Redirect: "/login"},
			authorize(models.RoleAdmin, ""))
	})

	t.Run("authenticated caller", func(t *testing.T) {
		assert.Equal(t, AuthorizeResponse{Decision: "allow"},
			authorize(models.RoleSchoolStudent, token))
		assert.Equal(t,
			AuthorizeResponse{Decision: "redirect_dashboard", Redirect: "/school_student-dashboard"},
			authorize(models.RoleAdmin, token))
		assert.Equal(t,
			AuthorizeResponse{Decision: "redirect_dashboard", Redirect: "/school_student-dashboard"},
			authorize("login", token))
	})
}

func TestLogout(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// The cookie is cleared by expiring it
	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth_token" {
			cleared = cookie.Value == "" && cookie.MaxAge < 0
		}
	}
	assert.True(t, cleared)
}
