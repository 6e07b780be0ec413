package services

import (
	"testing"

	"havjob/internal/db"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, mutate func(*db.User)) *db.User {
	t.Helper()

	phone := "+2376" + uuid.New().String()[:8]
	user := &db.User{
		ID:          uuid.New().String(),
		PhoneNumber: &phone,
		AuthMethod:  db.AuthMethodPhone,
		FullName:    "Test User",
		Role:        db.UserRoleFreelance,
	}
	if mutate != nil {
		mutate(user)
	}
	require.NoError(t, conn.Create(user).Error)

	return user
}

func seedMission(t *testing.T, conn *gorm.DB, clientID string, mutate func(*db.Mission)) *db.Mission {
	t.Helper()

	mission := &db.Mission{
		ID:          uuid.New().String(),
		ClientID:    clientID,
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

func ptr[T any](v T) *T {
	return &v
}
