package service

import (
	"context"
	"sort"
	"time"

	"time-tracker/internal/model"
	"time-tracker/internal/timeslice"
)

// BucketStore is the slice of bucket persistence the aggregation engine needs.
// Implemented by repository.BucketRepository.
type BucketStore interface {
	GetOrDefault(ctx context.Context, userID, labelID uint, key timeslice.Key) (*model.Bucket, error)
	SaveAll(ctx context.Context, buckets []*model.Bucket) error
	SumByKey(ctx context.Context, userID uint, labelIDs []uint, key timeslice.Key) (int, error)
	SumAllTime(ctx context.Context, userID uint, labelIDs []uint) (int, error)
}

// LabelStore resolves label display names for the denormalized bucket column.
// Implemented by repository.LabelRepository.
type LabelStore interface {
	FindByID(ctx context.Context, userID, labelID uint) (*model.Label, error)
}

// BucketAdjuster turns one tracked interval into per-coordinate minute deltas
// and applies or reverts them against the store.
type BucketAdjuster struct {
	buckets BucketStore
}

func NewBucketAdjuster(buckets BucketStore) *BucketAdjuster {
	return &BucketAdjuster{buckets: buckets}
}

// ComputeDeltas slices the interval into local days and folds every slice into
// its DAY, WEEK and MONTH coordinates. Slices sharing a coordinate (several
// days of one ISO week, say) are summed here, before any store access, so store
// traffic does not grow with the number of day slices.
func (a *BucketAdjuster) ComputeDeltas(start time.Time, minutes int, loc *time.Location) map[timeslice.Key]int {
	deltas := make(map[timeslice.Key]int)
	for _, slice := range timeslice.SliceByDay(start, minutes, loc) {
		for _, key := range timeslice.Keys(slice.Day) {
			deltas[key] += slice.Minutes
		}
	}
	return deltas
}

// Apply adds the deltas to the touched rows: load or default each one, add,
// then persist everything in a single batched upsert.
func (a *BucketAdjuster) Apply(ctx context.Context, userID, labelID uint, labelName string, deltas map[timeslice.Key]int) error {
	return a.adjust(ctx, userID, labelID, labelName, deltas, 1)
}

// Revert subtracts the deltas through the same flow. Totals are not clamped at
// zero; see clampMinutes.
func (a *BucketAdjuster) Revert(ctx context.Context, userID, labelID uint, labelName string, deltas map[timeslice.Key]int) error {
	return a.adjust(ctx, userID, labelID, labelName, deltas, -1)
}

func (a *BucketAdjuster) adjust(ctx context.Context, userID, labelID uint, labelName string, deltas map[timeslice.Key]int, sign int) error {
	if len(deltas) == 0 {
		return nil
	}

	keys := make([]timeslice.Key, 0, len(deltas))
	for key := range deltas {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	buckets := make([]*model.Bucket, 0, len(keys))
	for _, key := range keys {
		bucket, err := a.buckets.GetOrDefault(ctx, userID, labelID, key)
		if err != nil {
			return err
		}
		bucket.DurationMinutes = clampMinutes(bucket.DurationMinutes + sign*deltas[key])
		bucket.LabelName = labelName
		buckets = append(buckets, bucket)
	}

	return a.buckets.SaveAll(ctx, buckets)
}

// clampMinutes is the single place deciding whether an aggregate total may go
// negative. Reverting more than was applied (out-of-order edits) can push a
// total below zero; that is tolerated, so this is the identity.
func clampMinutes(v int) int {
	return v
}
