package services

import (
	"testing"
	"time"

	"havjob/internal/auth"
	"havjob/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRoundtrip(t *testing.T) {
	conn := newTestDB(t)
	svc := NewSessionService(SessionServiceParams{DB: conn, TTL: time.Hour})

	sid, err := svc.Create(auth.SessionPayload{UserID: "user-1"})
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	payload, err := svc.Get(sid)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.False(t, payload.IsAdmin)

	t.Run("admin payload", func(t *testing.T) {
		adminSid, err := svc.Create(auth.SessionPayload{IsAdmin: true, AdminUsername: "root"})
		require.NoError(t, err)
		require.NotEqual(t, sid, adminSid)

		payload, err := svc.Get(adminSid)
		require.NoError(t, err)
		assert.True(t, payload.IsAdmin)
		assert.Equal(t, "root", payload.AdminUsername)
	})

	t.Run("destroy", func(t *testing.T) {
		require.NoError(t, svc.Destroy(sid))
		_, err := svc.Get(sid)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown sid", func(t *testing.T) {
		_, err := svc.Get("nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSessionExpiry(t *testing.T) {
	conn := newTestDB(t)
	svc := NewSessionService(SessionServiceParams{DB: conn, TTL: -time.Minute})

	sid, err := svc.Create(auth.SessionPayload{UserID: "user-1"})
	require.NoError(t, err)

	_, err = svc.Get(sid)
	assert.ErrorIs(t, err, ErrNotFound)

	// the expired row is purged on read
	var count int64
	require.NoError(t, conn.Model(&db.Session{}).Where("sid = ?", sid).Count(&count).Error)
	assert.Zero(t, count)
}
