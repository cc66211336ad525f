package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"time-tracker/internal/model"
	"time-tracker/internal/timeslice"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func dayKey(year, value int) timeslice.Key {
	return timeslice.Key{Type: timeslice.BucketDay, Year: year, Value: value}
}

func TestBucketRepo_GetOrDefault_MissingRowIsZeroValued(t *testing.T) {
	repo := NewBucketRepository(newTestDB(t))
	ctx := context.Background()

	bucket, err := repo.GetOrDefault(ctx, 1, 2, dayKey(2025, 20250415))
	require.NoError(t, err)

	assert.Zero(t, bucket.ID)
	assert.Equal(t, uint(1), bucket.UserID)
	assert.Equal(t, uint(2), bucket.LabelID)
	assert.Equal(t, timeslice.BucketDay, bucket.BucketType)
	assert.Equal(t, 2025, bucket.BucketYear)
	assert.Equal(t, 20250415, bucket.BucketValue)
	assert.Equal(t, 0, bucket.DurationMinutes)
}

func TestBucketRepo_SaveAll_InsertsAndUpdates(t *testing.T) {
	repo := NewBucketRepository(newTestDB(t))
	ctx := context.Background()
	key := dayKey(2025, 20250415)

	first, err := repo.GetOrDefault(ctx, 1, 2, key)
	require.NoError(t, err)
	first.DurationMinutes = 60
	first.LabelName = "work"
	require.NoError(t, repo.SaveAll(ctx, []*model.Bucket{first}))

	loaded, err := repo.GetOrDefault(ctx, 1, 2, key)
	require.NoError(t, err)
	assert.NotZero(t, loaded.ID)
	assert.Equal(t, 60, loaded.DurationMinutes)
	assert.Equal(t, "work", loaded.LabelName)

	loaded.DurationMinutes = 90
	loaded.LabelName = "deep work"
	require.NoError(t, repo.SaveAll(ctx, []*model.Bucket{loaded}))

	again, err := repo.GetOrDefault(ctx, 1, 2, key)
	require.NoError(t, err)
	assert.Equal(t, loaded.ID, again.ID, "upsert must hit the same row")
	assert.Equal(t, 90, again.DurationMinutes)
	assert.Equal(t, "deep work", again.LabelName)
}

func TestBucketRepo_SaveAll_MixedBatch(t *testing.T) {
	repo := NewBucketRepository(newTestDB(t))
	ctx := context.Background()

	existing, err := repo.GetOrDefault(ctx, 1, 2, dayKey(2025, 20250415))
	require.NoError(t, err)
	existing.DurationMinutes = 30
	require.NoError(t, repo.SaveAll(ctx, []*model.Bucket{existing}))

	existing, err = repo.GetOrDefault(ctx, 1, 2, dayKey(2025, 20250415))
	require.NoError(t, err)
	existing.DurationMinutes += 15

	fresh, err := repo.GetOrDefault(ctx, 1, 2, timeslice.Key{Type: timeslice.BucketWeek, Year: 2025, Value: 16})
	require.NoError(t, err)
	fresh.DurationMinutes = 45

	require.NoError(t, repo.SaveAll(ctx, []*model.Bucket{existing, fresh}))

	total, err := repo.SumAllTime(ctx, 1, []uint{2})
	require.NoError(t, err)
	assert.Equal(t, 90, total)
}

func TestBucketRepo_SumByKey_MissingRowsCountZero(t *testing.T) {
	repo := NewBucketRepository(newTestDB(t))
	ctx := context.Background()
	key := dayKey(2025, 20250415)

	bucket, err := repo.GetOrDefault(ctx, 1, 2, key)
	require.NoError(t, err)
	bucket.DurationMinutes = 40
	require.NoError(t, repo.SaveAll(ctx, []*model.Bucket{bucket}))

	// Label 3 has no row at the coordinate; it contributes zero, not an error.
	total, err := repo.SumByKey(ctx, 1, []uint{2, 3}, key)
	require.NoError(t, err)
	assert.Equal(t, 40, total)

	other, err := repo.SumByKey(ctx, 1, []uint{3}, key)
	require.NoError(t, err)
	assert.Equal(t, 0, other)
}

func TestBucketRepo_SumByKey_ScopedToUserAndCoordinate(t *testing.T) {
	repo := NewBucketRepository(newTestDB(t))
	ctx := context.Background()
	key := dayKey(2025, 20250415)

	mine, err := repo.GetOrDefault(ctx, 1, 2, key)
	require.NoError(t, err)
	mine.DurationMinutes = 25
	theirs, err := repo.GetOrDefault(ctx, 9, 2, key)
	require.NoError(t, err)
	theirs.DurationMinutes = 500
	require.NoError(t, repo.SaveAll(ctx, []*model.Bucket{mine, theirs}))

	total, err := repo.SumByKey(ctx, 1, []uint{2}, key)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
}

func TestBucketRepo_RecentDays_ListsNewestDayRowsOnly(t *testing.T) {
	repo := NewBucketRepository(newTestDB(t))
	ctx := context.Background()

	var batch []*model.Bucket
	for _, value := range []int{20250413, 20250414, 20250415} {
		bucket, err := repo.GetOrDefault(ctx, 1, 2, dayKey(2025, value))
		require.NoError(t, err)
		bucket.DurationMinutes = value % 100
		bucket.LabelName = "work"
		batch = append(batch, bucket)
	}
	week, err := repo.GetOrDefault(ctx, 1, 2, timeslice.Key{Type: timeslice.BucketWeek, Year: 2025, Value: 16})
	require.NoError(t, err)
	week.DurationMinutes = 42
	batch = append(batch, week)
	require.NoError(t, repo.SaveAll(ctx, batch))

	days, err := repo.RecentDays(ctx, 1, 2, 2)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 20250415, days[0].BucketValue)
	assert.Equal(t, 20250414, days[1].BucketValue)
	assert.Equal(t, "work", days[0].LabelName)
}
