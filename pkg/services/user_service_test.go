package services

import (
	"context"
	"testing"
	"time"

	"github.com/moim-labs/moim/pkg/models"
	testdb "github.com/moim-labs/moim/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("creates user with defaults", func(t *testing.T) {
		u, err := service.CreateUser(ctx, models.CreateUserRequest{
			UserID: "user-alice",
			Name:   "앨리스",
			Email:  "alice@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "user-alice", u.ID)
		assert.Equal(t, "앨리스", u.Name)
		assert.Equal(t, "Asia/Seoul", u.Timezone)
	})

	t.Run("accepts explicit timezone", func(t *testing.T) {
		u, err := service.CreateUser(ctx, models.CreateUserRequest{
			UserID:   "user-nyc",
			Name:     "Casey",
			Email:    "casey@example.com",
			Timezone: "America/New_York",
		})
		require.NoError(t, err)
		assert.Equal(t, "America/New_York", u.Timezone)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateUserRequest
		}{
			{name: "missing user_id", req: models.CreateUserRequest{Name: "n", Email: "e@example.com"}},
			{name: "missing name", req: models.CreateUserRequest{UserID: "u", Email: "e@example.com"}},
			{name: "missing email", req: models.CreateUserRequest{UserID: "u", Name: "n"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateUser(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects duplicate user_id", func(t *testing.T) {
		_, err := service.CreateUser(ctx, models.CreateUserRequest{
			UserID: "user-alice",
			Name:   "다른 앨리스",
			Email:  "alice2@example.com",
		})
		require.Error(t, err)
		assert.Equal(t, ErrAlreadyExists, err)
	})
}

func TestUserService_Lookups(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")
	seedUser(t, client.Client, "user-bob", "철수")
	seedUser(t, client.Client, "user-carol", "영희")

	t.Run("GetUser returns ErrNotFound for missing user", func(t *testing.T) {
		_, err := service.GetUser(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})

	t.Run("GetUsersByIDs fetches a batch", func(t *testing.T) {
		users, err := service.GetUsersByIDs(ctx, []string{"user-alice", "user-carol"})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("FindUsersByNames resolves display names", func(t *testing.T) {
		users, err := service.FindUsersByNames(ctx, []string{"철수", "영희"})
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "user-bob", users[0].ID)
		assert.Equal(t, "user-carol", users[1].ID)
	})

	t.Run("FindUsersByNames skips unknown names", func(t *testing.T) {
		users, err := service.FindUsersByNames(ctx, []string{"철수", "모르는사람"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "user-bob", users[0].ID)
	})

	t.Run("FindUsersByNames prefers the oldest account for ambiguous names", func(t *testing.T) {
		older := seedUser(t, client.Client, "user-dup-1", "동명이인")
		time.Sleep(10 * time.Millisecond)
		seedUser(t, client.Client, "user-dup-2", "동명이인")

		users, err := service.FindUsersByNames(ctx, []string{"동명이인"})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, older.ID, users[0].ID)
	})

	t.Run("DisplayNames falls back to the raw id", func(t *testing.T) {
		names, err := service.DisplayNames(ctx, []string{"user-alice", "ghost-user"})
		require.NoError(t, err)
		assert.Equal(t, "앨리스", names["user-alice"])
		assert.Equal(t, "ghost-user", names["ghost-user"])
	})
}

func TestUserService_Credentials(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	seedUser(t, client.Client, "user-alice", "앨리스")

	t.Run("returns zero credentials before any token is saved", func(t *testing.T) {
		creds, err := service.Credentials(ctx, "user-alice")
		require.NoError(t, err)
		assert.Empty(t, creds.AccessToken)
		assert.Empty(t, creds.RefreshToken)
		assert.True(t, creds.Expiry.IsZero())
	})

	t.Run("round-trips saved tokens", func(t *testing.T) {
		expiry := time.Now().Add(time.Hour).Truncate(time.Second)
		err := service.SaveTokens(ctx, "user-alice", "ya29.fresh-token", expiry)
		require.NoError(t, err)

		creds, err := service.Credentials(ctx, "user-alice")
		require.NoError(t, err)
		assert.Equal(t, "ya29.fresh-token", creds.AccessToken)
		assert.WithinDuration(t, expiry, creds.Expiry, time.Second)
	})

	t.Run("returns ErrNotFound for missing user", func(t *testing.T) {
		_, err := service.Credentials(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)

		err = service.SaveTokens(ctx, "nonexistent", "tok", time.Now())
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}
