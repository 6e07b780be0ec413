package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"havjob/internal/auth"
	"havjob/internal/db"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMissionRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	handler := NewMissionHandler(MissionHandlerParams{
		MissionService: services.NewMissionService(conn),
		Logger:         zap.NewNop(),
	})

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-Test-User"); userID != "" {
			auth.SetIdentity(c, auth.Identity{UserID: userID})
		}
	})
	router.GET("/api/missions", handler.List)
	router.GET("/api/missions/:id", handler.Get)
	router.POST("/api/missions", handler.Create)

	return router, conn
}

func seedMissionRow(t *testing.T, conn *gorm.DB, mutate func(*db.Mission)) *db.Mission {
	t.Helper()

	mission := &db.Mission{
		ID:          uuid.New().String(),
		ClientID:    uuid.New().String(),
		Title:       "Refonte du site vitrine",
		Description: "Refonte complete du site vitrine avec integration du catalogue produits.",
		Category:    "Développement",
		Budget:      150000,
		BudgetType:  "fixed",
		Status:      db.MissionStatusOpen,
	}
	if mutate != nil {
		mutate(mission)
	}
	require.NoError(t, conn.Create(mission).Error)

	return mission
}

func TestListMissionsRejectsMalformedFilters(t *testing.T) {
	router, _ := newMissionRouter(t)

	cases := []struct {
		name  string
		query string
	}{
		{"minBudget not a number", "minBudget=abc"},
		{"maxBudget not a number", "maxBudget=12x"},
		{"isRemote not a boolean", "isRemote=maybe"},
		{"isOnSite not a boolean", "isOnSite=oui"},
		{"isBoosted not a boolean", "isBoosted=1000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/missions?"+tc.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestListMissionsBoostedFirst(t *testing.T) {
	router, conn := newMissionRouter(t)

	now := time.Now()
	plain := seedMissionRow(t, conn, func(m *db.Mission) {
		m.CreatedAt = now
	})
	expiresAt := now.Add(24 * time.Hour)
	boosted := seedMissionRow(t, conn, func(m *db.Mission) {
		m.IsBoosted = true
		m.BoostExpiresAt = &expiresAt
		m.CreatedAt = now.Add(-time.Hour)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/missions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var missions []db.Mission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &missions))
	require.Len(t, missions, 2)
	assert.Equal(t, boosted.ID, missions[0].ID)
	assert.Equal(t, plain.ID, missions[1].ID)
}

func TestGetMissionNotFound(t *testing.T) {
	router, _ := newMissionRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/missions/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateMission(t *testing.T) {
	router, conn := newMissionRouter(t)

	t.Run("valid payload", func(t *testing.T) {
		payload, _ := json.Marshal(gin.H{
			"title":       "Developpement API paiement",
			"description": "Integration d'un agregateur de paiement mobile money sur la plateforme existante.",
			"category":    "Développement",
			"budget":      250000,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/missions", bytes.NewReader(payload))
		req.Header.Set("X-Test-User", "client-1")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var mission db.Mission
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mission))
		assert.Equal(t, "client-1", mission.ClientID)

		var count int64
		require.NoError(t, conn.Model(&db.Mission{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("title too short", func(t *testing.T) {
		payload, _ := json.Marshal(gin.H{
			"title":       "Court",
			"description": "Integration d'un agregateur de paiement mobile money sur la plateforme existante.",
			"category":    "Développement",
			"budget":      250000,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/missions", bytes.NewReader(payload))
		req.Header.Set("X-Test-User", "client-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("budget below minimum", func(t *testing.T) {
		payload, _ := json.Marshal(gin.H{
			"title":       "Developpement API paiement",
			"description": "Integration d'un agregateur de paiement mobile money sur la plateforme existante.",
			"category":    "Développement",
			"budget":      500,
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/missions", bytes.NewReader(payload))
		req.Header.Set("X-Test-User", "client-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
