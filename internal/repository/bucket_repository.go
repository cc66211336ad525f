package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"time-tracker/internal/model"
	"time-tracker/internal/timeslice"
)

// BucketRepository persists aggregate rows. The aggregation engine is the only
// writer of duration_minutes; rows appear lazily on first contribution and are
// never deleted here.
type BucketRepository struct {
	db *gorm.DB
}

func NewBucketRepository(db *gorm.DB) *BucketRepository {
	return &BucketRepository{db: db}
}

// GetOrDefault loads the row at the given coordinate, or returns a zero-valued
// row ready for its first save when none exists yet.
func (r *BucketRepository) GetOrDefault(ctx context.Context, userID, labelID uint, key timeslice.Key) (*model.Bucket, error) {
	var bucket model.Bucket
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND label_id = ? AND bucket_type = ? AND bucket_year = ? AND bucket_value = ?",
			userID, labelID, key.Type, key.Year, key.Value).
		First(&bucket).Error
	switch {
	case err == nil:
		return &bucket, nil
	case err == gorm.ErrRecordNotFound:
		return &model.Bucket{
			UserID:      userID,
			LabelID:     labelID,
			BucketType:  key.Type,
			BucketYear:  key.Year,
			BucketValue: key.Value,
		}, nil
	default:
		return nil, fmt.Errorf("find bucket: %w", err)
	}
}

// SaveAll upserts every row in one batch, keyed on the coordinate unique index.
func (r *BucketRepository) SaveAll(ctx context.Context, buckets []*model.Bucket) error {
	if len(buckets) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Omit("id").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"}, {Name: "label_id"},
				{Name: "bucket_type"}, {Name: "bucket_year"}, {Name: "bucket_value"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"duration_minutes", "label_name", "updated_at"}),
		}).
		Create(&buckets).Error
	if err != nil {
		return fmt.Errorf("save buckets: %w", err)
	}
	return nil
}

// SumByKey sums tracked minutes across the label set at one coordinate. Labels
// with no row there contribute zero.
func (r *BucketRepository) SumByKey(ctx context.Context, userID uint, labelIDs []uint, key timeslice.Key) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Bucket{}).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Where("user_id = ? AND label_id IN ? AND bucket_type = ? AND bucket_year = ? AND bucket_value = ?",
			userID, labelIDs, key.Type, key.Year, key.Value).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum buckets: %w", err)
	}
	return int(total), nil
}

// SumAllTime sums every row for the label set regardless of bucket type.
func (r *BucketRepository) SumAllTime(ctx context.Context, userID uint, labelIDs []uint) (int, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Bucket{}).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Where("user_id = ? AND label_id IN ?", userID, labelIDs).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum buckets: %w", err)
	}
	return int(total), nil
}

// RecentDays lists the label's newest DAY rows; the denormalized label_name
// makes this joinless.
func (r *BucketRepository) RecentDays(ctx context.Context, userID, labelID uint, limit int) ([]model.Bucket, error) {
	var buckets []model.Bucket
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND label_id = ? AND bucket_type = ?", userID, labelID, timeslice.BucketDay).
		Order("bucket_value DESC").
		Limit(limit).
		Find(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("list day buckets: %w", err)
	}
	return buckets, nil
}
