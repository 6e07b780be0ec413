package services

import (
	"testing"
	"time"

	"havjob/internal/auth"
	"havjob/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMissionsOrdering(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)
	client := seedUser(t, conn, nil)

	now := time.Now()

	// plain, newest of all
	newest := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Title = "Mission la plus recente"
		m.CreatedAt = now
	})
	// boosted without expiry, oldest
	boostedOld := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Title = "Mission boostee ancienne"
		m.IsBoosted = true
		m.CreatedAt = now.Add(-48 * time.Hour)
	})
	// boosted with a live expiry
	boostedLive := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Title = "Mission boostee active"
		m.IsBoosted = true
		m.BoostExpiresAt = ptr(now.Add(24 * time.Hour))
		m.CreatedAt = now.Add(-24 * time.Hour)
	})
	// flag still set but the boost has expired, ranks with the plain ones
	expired := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Title = "Mission dont le boost a expire"
		m.IsBoosted = true
		m.BoostExpiresAt = ptr(now.Add(-time.Hour))
		m.CreatedAt = now.Add(-12 * time.Hour)
	})

	missions, err := svc.ListMissions(MissionFilters{})
	require.NoError(t, err)
	require.Len(t, missions, 4)

	assert.Equal(t, boostedLive.ID, missions[0].ID)
	assert.Equal(t, boostedOld.ID, missions[1].ID)
	assert.Equal(t, newest.ID, missions[2].ID)
	assert.Equal(t, expired.ID, missions[3].ID)
}

func TestListMissionsBoostedFilter(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)
	client := seedUser(t, conn, nil)

	now := time.Now()
	live := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.IsBoosted = true
		m.BoostExpiresAt = ptr(now.Add(time.Hour))
	})
	expired := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.IsBoosted = true
		m.BoostExpiresAt = ptr(now.Add(-time.Hour))
	})
	plain := seedMission(t, conn, client.ID, nil)

	t.Run("boosted only", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{IsBoosted: ptr(true)})
		require.NoError(t, err)
		require.Len(t, missions, 1)
		assert.Equal(t, live.ID, missions[0].ID)
	})

	t.Run("not boosted includes expired", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{IsBoosted: ptr(false)})
		require.NoError(t, err)
		require.Len(t, missions, 2)
		ids := []string{missions[0].ID, missions[1].ID}
		assert.Contains(t, ids, expired.ID)
		assert.Contains(t, ids, plain.ID)
	})
}

func TestListMissionsFilters(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)
	client := seedUser(t, conn, nil)

	dev := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Category = "Développement"
		m.Budget = 200000
		m.Location = ptr("Douala")
	})
	design := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Category = "Design"
		m.Budget = 120000
		m.Location = ptr("Yaoundé")
	})
	seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Category = "Marketing"
		m.Budget = 80000
	})
	seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Category = "Développement"
		m.Budget = 500000
	})

	t.Run("category list with budget range", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{
			Category:  "Développement, Design",
			MinBudget: ptr(100000),
			MaxBudget: ptr(400000),
		})
		require.NoError(t, err)
		require.Len(t, missions, 2)
		ids := []string{missions[0].ID, missions[1].ID}
		assert.Contains(t, ids, dev.ID)
		assert.Contains(t, ids, design.ID)
	})

	t.Run("location filter skips missions without location", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{Location: "Douala,Yaoundé"})
		require.NoError(t, err)
		require.Len(t, missions, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{Status: string(db.MissionStatusOpen)})
		require.NoError(t, err)
		assert.Len(t, missions, 4)
	})
}

func TestListMissionsRemoteFlags(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)
	client := seedUser(t, conn, nil)

	remote := seedMission(t, conn, client.ID, func(m *db.Mission) { m.IsRemote = true })
	onSite := seedMission(t, conn, client.ID, nil)

	t.Run("remote", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{IsRemote: ptr(true)})
		require.NoError(t, err)
		require.Len(t, missions, 1)
		assert.Equal(t, remote.ID, missions[0].ID)
	})

	t.Run("on site", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{IsOnSite: ptr(true)})
		require.NoError(t, err)
		require.Len(t, missions, 1)
		assert.Equal(t, onSite.ID, missions[0].ID)
	})

	t.Run("contradictory flags match nothing", func(t *testing.T) {
		missions, err := svc.ListMissions(MissionFilters{
			IsRemote: ptr(true),
			IsOnSite: ptr(true),
		})
		require.NoError(t, err)
		assert.Empty(t, missions)
	})
}

func TestListMissionsSearch(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)
	client := seedUser(t, conn, nil)

	match := seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Title = "Application mobile de livraison"
	})
	seedMission(t, conn, client.ID, func(m *db.Mission) {
		m.Title = "Identite visuelle complete"
		m.Description = "Logo, charte graphique et supports de communication pour une startup."
	})

	missions, err := svc.ListMissions(MissionFilters{Search: "MOBILE"})
	require.NoError(t, err)
	require.Len(t, missions, 1)
	assert.Equal(t, match.ID, missions[0].ID)
}

func TestCreateMissionDefaults(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)
	client := seedUser(t, conn, nil)

	mission, err := svc.CreateMission(auth.Identity{UserID: client.ID}, CreateMissionInput{
		Title:       "Developpement API paiement",
		Description: "Integration d'un agregateur de paiement mobile money sur la plateforme existante.",
		Category:    "Développement",
		Budget:      250000,
	})
	require.NoError(t, err)

	assert.Equal(t, client.ID, mission.ClientID)
	assert.Equal(t, "fixed", mission.BudgetType)
	assert.Equal(t, db.MissionStatusOpen, mission.Status)
	assert.False(t, mission.IsBoosted)
}

func TestUpdateMissionOwnership(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)
	owner := seedUser(t, conn, nil)
	other := seedUser(t, conn, nil)
	mission := seedMission(t, conn, owner.ID, nil)

	t.Run("owner updates", func(t *testing.T) {
		updated, err := svc.UpdateMission(auth.Identity{UserID: owner.ID}, mission.ID, UpdateMissionInput{
			Budget:         ptr(300000),
			Status:         ptr(db.MissionStatusInProgress),
			SkillsRequired: []string{"Go", "PostgreSQL"},
		})
		require.NoError(t, err)
		assert.Equal(t, 300000, updated.Budget)
		assert.Equal(t, db.MissionStatusInProgress, updated.Status)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, updated.SkillsRequired)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		_, err := svc.UpdateMission(auth.Identity{UserID: other.ID}, mission.ID, UpdateMissionInput{
			Budget: ptr(1000),
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.DeleteMission(auth.Identity{UserID: other.ID}, mission.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.DeleteMission(auth.Identity{UserID: owner.ID}, mission.ID))
		_, err := svc.GetMission(mission.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetMissionNotFound(t *testing.T) {
	conn := newTestDB(t)
	svc := NewMissionService(conn)

	_, err := svc.GetMission("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
