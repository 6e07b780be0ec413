package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites(t *testing.T) {
	conn := newTestDB(t)
	svc := NewFavoriteService(conn)
	client := seedUser(t, conn, nil)
	user := seedUser(t, conn, nil)
	mission := seedMission(t, conn, client.ID, nil)

	t.Run("mission must exist", func(t *testing.T) {
		_, err := svc.Add(user.ID, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("add and check", func(t *testing.T) {
		favorite, err := svc.Add(user.ID, mission.ID)
		require.NoError(t, err)
		assert.Equal(t, mission.ID, favorite.MissionID)

		isFavorite, err := svc.IsFavorite(user.ID, mission.ID)
		require.NoError(t, err)
		assert.True(t, isFavorite)
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		_, err := svc.Add(user.ID, mission.ID)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("list", func(t *testing.T) {
		favorites, err := svc.ListByUser(user.ID)
		require.NoError(t, err)
		assert.Len(t, favorites, 1)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, svc.Remove(user.ID, mission.ID))
		require.NoError(t, svc.Remove(user.ID, mission.ID))

		isFavorite, err := svc.IsFavorite(user.ID, mission.ID)
		require.NoError(t, err)
		assert.False(t, isFavorite)
	})
}
