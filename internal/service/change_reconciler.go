package service

import (
	"context"
	"fmt"
	"time"
)

// EventChange is the before/after snapshot of one event mutation, produced by
// the event side after any change that can affect completion, label or timing.
// Timezone is the owner's configured zone at the time of the change; it is
// carried in the record and never re-derived from the event.
type EventChange struct {
	UserID       uint
	OldLabelID   *uint
	NewLabelID   *uint
	OldStart     time.Time
	OldMinutes   int
	NewStart     time.Time
	NewMinutes   int
	Timezone     string
	WasCompleted bool
	IsCompleted  bool
}

// ChangeReconciler translates an event change into the revert/apply sequence
// that keeps the bucket rows consistent with it.
type ChangeReconciler struct {
	adjuster *BucketAdjuster
	labels   LabelStore
}

func NewChangeReconciler(buckets BucketStore, labels LabelStore) *ChangeReconciler {
	return &ChangeReconciler{adjuster: NewBucketAdjuster(buckets), labels: labels}
}

// Reconcile dispatches on the (wasCompleted, isCompleted) pair:
//
//	false → false   nothing tracked on either side, zero store access
//	false → true    apply(after)
//	true  → false   revert(before)
//	true  → true    revert(before), then apply(after) — even when the label and
//	                interval are unchanged
//
// A side with no label contributes nothing. Display names are resolved once per
// distinct touched label before any mutation; a failed lookup aborts the whole
// reconciliation with no partial writes.
func (r *ChangeReconciler) Reconcile(ctx context.Context, change EventChange) error {
	if !change.WasCompleted && !change.IsCompleted {
		return nil
	}

	loc, err := time.LoadLocation(change.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", change.Timezone, err)
	}

	names, err := r.resolveNames(ctx, change)
	if err != nil {
		return err
	}

	revert := func() error {
		if change.OldLabelID == nil {
			return nil
		}
		deltas := r.adjuster.ComputeDeltas(change.OldStart, change.OldMinutes, loc)
		return r.adjuster.Revert(ctx, change.UserID, *change.OldLabelID, names[*change.OldLabelID], deltas)
	}
	apply := func() error {
		if change.NewLabelID == nil {
			return nil
		}
		deltas := r.adjuster.ComputeDeltas(change.NewStart, change.NewMinutes, loc)
		return r.adjuster.Apply(ctx, change.UserID, *change.NewLabelID, names[*change.NewLabelID], deltas)
	}

	switch {
	case !change.WasCompleted && change.IsCompleted:
		return apply()
	case change.WasCompleted && !change.IsCompleted:
		return revert()
	default: // true → true
		if err := revert(); err != nil {
			return err
		}
		return apply()
	}
}

// resolveNames looks up the display name of every label the change will touch.
func (r *ChangeReconciler) resolveNames(ctx context.Context, change EventChange) (map[uint]string, error) {
	var touched []*uint
	if change.WasCompleted {
		touched = append(touched, change.OldLabelID)
	}
	if change.IsCompleted {
		touched = append(touched, change.NewLabelID)
	}

	names := make(map[uint]string)
	for _, id := range touched {
		if id == nil {
			continue
		}
		if _, ok := names[*id]; ok {
			continue
		}
		label, err := r.labels.FindByID(ctx, change.UserID, *id)
		if err != nil {
			return nil, fmt.Errorf("resolve label %d: %w", *id, err)
		}
		names[*id] = label.Name
	}
	return names, nil
}
