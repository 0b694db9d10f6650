package prizes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/config"
	"api/database"
	"api/middleware"
	"api/models"
	"api/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	router      *gin.Engine
	competition models.Competition
	adminToken  string
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

	adminRole := models.Role{Name: models.RoleAdmin}
	require.NoError(t, db.Create(&adminRole).Error)
	studentRole := models.Role{Name: models.RoleSchoolStudent}
	require.NoError(t, db.Create(&studentRole).Error)

	hash, err := utils.HashPassword("secret-password")
	require.NoError(t, err)
	admin := models.User{Name: "Admin", Phone: "9999999999", Password: hash, RoleID: adminRole.ID}
	require.NoError(t, db.Create(&admin).Error)

	adminToken, err := middleware.GenerateToken(admin)
	require.NoError(t, err)

	competition := models.Competition{Name: "Essay Writing", RoleID: studentRole.ID}
	require.NoError(t, db.Create(&competition).Error)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))

	return &testEnv{router: router, competition: competition, adminToken: adminToken}
}

func performRequest(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(encoded))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedPrize(t *testing.T, competitionID, rank string, amount int64) models.Prize {
	t.Helper()

	prize := models.Prize{
		CompetitionID: competitionID,
		Rank:          rank,
		Amount:        decimal.NewFromInt(amount),
	}
	require.NoError(t, database.DB.Create(&prize).Error)
	return prize
}

func TestGetAllPrizesOrdering(t *testing.T) {
	env := setupTestEnv(t)

	// Seeded out of order on purpose
	seedPrize(t, env.competition.ID, "10th", 500)
	seedPrize(t, env.competition.ID, "Consolation", 100)
	seedPrize(t, env.competition.ID, "1st", 5000)
	seedPrize(t, env.competition.ID, "2nd", 3000)

	w := performRequest(t, env.router, http.MethodGet, "/api/v1/prizes", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var prizes []models.Prize
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prizes))
	require.Len(t, prizes, 4)

	ranks := []string{prizes[0].Rank, prizes[1].Rank, prizes[2].Rank, prizes[3].Rank}
	assert.Equal(t, []string{"1st", "2nd", "10th", "Consolation"}, ranks)
}

func TestGetAllPrizesFilter(t *testing.T) {
	env := setupTestEnv(t)

	var studentRole models.Role
	require.NoError(t, database.DB.Where("name = ?", models.RoleSchoolStudent).First(&studentRole).Error)
	other := models.Competition{Name: "Science Quiz", RoleID: studentRole.ID}
	require.NoError(t, database.DB.Create(&other).Error)

	seedPrize(t, env.competition.ID, "1st", 5000)
	seedPrize(t, other.ID, "1st", 2000)

	w := performRequest(t, env.router, http.MethodGet, "/api/v1/prizes?competition_id="+other.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var prizes []models.Prize
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prizes))
	require.Len(t, prizes, 1)
	assert.Equal(t, other.ID, prizes[0].CompetitionID)
}

func TestCreatePrize(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("admin creates a prize", func(t *testing.T) {
		w := performRequest(t, env.router, http.MethodPost, "/api/v1/prizes", env.adminToken, gin.H{
			"competition_id": env.competition.ID,
			"rank":           "1st",
			"amount":         "2500.50",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var prize models.Prize
		require.NoError(t, database.DB.First(&prize, "rank = ?", "1st").Error)
		assert.True(t, prize.Amount.Equal(decimal.RequireFromString("2500.50")))
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		w := performRequest(t, env.router, http.MethodPost, "/api/v1/prizes", env.adminToken, gin.H{
			"competition_id": env.competition.ID,
			"rank":           "2nd",
			"amount":         "-10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrNegativeAmount)
	})

	t.Run("rejects unknown competitions", func(t *testing.T) {
		w := performRequest(t, env.router, http.MethodPost, "/api/v1/prizes", env.adminToken, gin.H{
			"competition_id": "00000000-0000-0000-0000-000000000000",
			"rank":           "2nd",
			"amount":         "10",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous callers are redirected to login", func(t *testing.T) {
		w := performRequest(t, env.router, http.MethodPost, "/api/v1/prizes", "", gin.H{
			"competition_id": env.competition.ID,
			"rank":           "3rd",
			"amount":         "10",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "/login")
	})
}

func TestUpdateAndDeletePrize(t *testing.T) {
	env := setupTestEnv(t)
	prize := seedPrize(t, env.competition.ID, "1st", 1000)

	t.Run("update changes rank and amount", func(t *testing.T) {
		w := performRequest(t, env.router, http.MethodPut, "/api/v1/prizes/"+prize.ID, env.adminToken, gin.H{
			"competition_id": env.competition.ID,
			"rank":           "2nd",
			"amount":         "750",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated models.Prize
		require.NoError(t, database.DB.First(&updated, "id = ?", prize.ID).Error)
		assert.Equal(t, "2nd", updated.Rank)
		assert.True(t, updated.Amount.Equal(decimal.NewFromInt(750)))
	})

	t.Run("delete removes the prize", func(t *testing.T) {
		w := performRequest(t, env.router, http.MethodDelete, "/api/v1/prizes/"+prize.ID, env.adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		database.DB.Model(&models.Prize{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("missing prize is 404", func(t *testing.T) {
		w := performRequest(t, env.router, http.MethodDelete, "/api/v1/prizes/"+prize.ID, env.adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
