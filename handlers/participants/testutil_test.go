package participants

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"api/config"
	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// fakeStore records saves and removals without touching real storage
type fakeStore struct {
	mu      sync.Mutex
	saved   []string
	removed []string
}

func (f *fakeStore) Save(ctx context.Context, dir string, file *multipart.FileHeader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	path := fmt.Sprintf("%s/file-%d", dir, len(f.saved)+1)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeStore) Remove(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, path)
	return nil
}

type testEnv struct {
	router *gin.Engine
	store  *fakeStore
	roles  map[string]models.Role
}

func setupTestEnv(t *testing.T) *testEnv {
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
	); err != nil {
		t.Fatalf("failed automigrating models: %v", err)
	}
	database.DB = db

	roles := make(map[string]models.Role)
	for _, name := range []string{models.RoleAdmin, models.RoleSchoolStudent, models.RoleCollegeStudent} {
		role := models.Role{Name: name}
		if err := db.Create(&role).Error; err != nil {
			t.Fatalf("failed seeding role %s: %v", name, err)
		}
		roles[name] = role
	}

	store := &fakeStore{}
	Store = store

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))

	return &testEnv{router: router, store: store, roles: roles}
}

func createTestUser(t *testing.T, name, phone, roleName string, roles map[string]models.Role) (models.User, string) {
	t.Helper()

	hash, err := utils.HashPassword("secret-password")
	if err != nil {
		t.Fatalf("failed hashing password: %v", err)
	}

	user := models.User{
		Name:     name,
		Phone:    phone,
		Password: hash,
		RoleID:   roles[roleName].ID,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed creating test user: %v", err)
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		t.Fatalf("failed generating token: %v", err)
	}

	return user, token
}

func createTestCompetition(t *testing.T, name, roleID string, quota int) models.Competition {
	t.Helper()

	competition := models.Competition{Name: name, RoleID: roleID, UploadQuota: quota}
	if err := database.DB.Create(&competition).Error; err != nil {
		t.Fatalf("failed creating test competition: %v", err)
	}
	return competition
}

func performJSONRequest(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// performUploadRequest sends a multipart request with one entry per
// payload under the submission file field
func performUploadRequest(t *testing.T, router *gin.Engine, path, token string, payloads [][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for i, payload := range payloads {
		part, err := writer.CreateFormFile(uploadField, fmt.Sprintf("photo-%d.jpg", i+1))
		if err != nil {
			t.Fatalf("failed creating form file: %v", err)
		}
		if _, err := part.Write(payload); err != nil {
			t.Fatalf("failed writing form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed closing multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSONMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, w.Body.String())
	}
	return payload
}
