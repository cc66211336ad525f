package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"time-tracker/internal/model"
	"time-tracker/internal/repository"
	"time-tracker/internal/timeslice"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, timezone string) *model.User {
	t.Helper()
	user := &model.User{TelegramID: 1001, FirstName: "Alice", Timezone: timezone}
	require.NoError(t, db.Create(user).Error)
	return user
}

func bucketMinutes(t *testing.T, store BucketStore, userID, labelID uint, key timeslice.Key) int {
	t.Helper()
	bucket, err := store.GetOrDefault(context.Background(), userID, labelID, key)
	require.NoError(t, err)
	return bucket.DurationMinutes
}
