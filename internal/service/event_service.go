package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"time-tracker/internal/model"
	"time-tracker/internal/repository"
)

// EventInput carries the fields a user can set on a tracked event.
type EventInput struct {
	Title           string
	Description     string
	Label           string
	StartAt         time.Time
	DurationMinutes int
	Completed       bool
}

// EventService owns event mutations. Each mutation and its bucket
// reconciliation run inside one transaction, so a rollback reverts both sides
// together and no half-reconciled state can be observed.
type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// CreateEvent stores a new event. A completed event immediately contributes to
// the owner's buckets.
func (s *EventService) CreateEvent(ctx context.Context, user *model.User, input EventInput, now time.Time) (*model.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	var created *model.Event
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		labels := repository.NewLabelRepository(tx)
		events := repository.NewEventRepository(tx)

		var labelID *uint
		if input.Label != "" {
			label, err := labels.GetOrCreate(ctx, user.ID, input.Label)
			if err != nil {
				return err
			}
			if label != nil {
				labelID = &label.ID
			}
		}

		event := model.Event{
			UserID:          user.ID,
			LabelID:         labelID,
			Title:           input.Title,
			Description:     input.Description,
			StartAt:         input.StartAt,
			DurationMinutes: input.DurationMinutes,
			IsCompleted:     input.Completed,
		}
		if input.Completed {
			event.CompletedAt = &now
		}
		if err := events.Create(ctx, &event); err != nil {
			return err
		}

		reconciler := NewChangeReconciler(repository.NewBucketRepository(tx), labels)
		if err := reconciler.Reconcile(ctx, EventChange{
			UserID:       user.ID,
			NewLabelID:   event.LabelID,
			NewStart:     event.StartAt,
			NewMinutes:   event.DurationMinutes,
			Timezone:     user.Timezone,
			WasCompleted: false,
			IsCompleted:  event.IsCompleted,
		}); err != nil {
			return err
		}

		created = &event
		return nil
	})
	return created, err
}

// UpdateEvent rewrites an event's fields and reconciles the buckets against the
// before/after snapshot.
func (s *EventService) UpdateEvent(ctx context.Context, user *model.User, eventID uint, input EventInput) (*model.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	var updated *model.Event
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		labels := repository.NewLabelRepository(tx)
		events := repository.NewEventRepository(tx)

		event, err := events.FindByID(ctx, user.ID, eventID)
		if err != nil {
			return err
		}
		before := *event

		var labelID *uint
		if input.Label != "" {
			label, err := labels.GetOrCreate(ctx, user.ID, input.Label)
			if err != nil {
				return err
			}
			if label != nil {
				labelID = &label.ID
			}
		}

		event.LabelID = labelID
		event.Title = input.Title
		event.Description = input.Description
		event.StartAt = input.StartAt
		event.DurationMinutes = input.DurationMinutes
		if err := events.Save(ctx, event); err != nil {
			return err
		}

		reconciler := NewChangeReconciler(repository.NewBucketRepository(tx), labels)
		if err := reconciler.Reconcile(ctx, changeBetween(&before, event, user.Timezone)); err != nil {
			return err
		}

		updated = event
		return nil
	})
	return updated, err
}

// CompleteEvent marks an event done, which applies its interval to the buckets.
func (s *EventService) CompleteEvent(ctx context.Context, user *model.User, eventID uint, now time.Time) (*model.Event, error) {
	return s.setCompleted(ctx, user, eventID, true, now)
}

// ReopenEvent clears the completion flag, which reverts the interval.
func (s *EventService) ReopenEvent(ctx context.Context, user *model.User, eventID uint, now time.Time) (*model.Event, error) {
	return s.setCompleted(ctx, user, eventID, false, now)
}

func (s *EventService) setCompleted(ctx context.Context, user *model.User, eventID uint, completed bool, now time.Time) (*model.Event, error) {
	var updated *model.Event
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)

		event, err := events.FindByID(ctx, user.ID, eventID)
		if err != nil {
			return err
		}
		before := *event

		event.IsCompleted = completed
		if completed {
			event.CompletedAt = &now
		} else {
			event.CompletedAt = nil
		}
		if err := events.Save(ctx, event); err != nil {
			return err
		}

		reconciler := NewChangeReconciler(repository.NewBucketRepository(tx), repository.NewLabelRepository(tx))
		if err := reconciler.Reconcile(ctx, changeBetween(&before, event, user.Timezone)); err != nil {
			return err
		}

		updated = event
		return nil
	})
	return updated, err
}

// DeleteEvent removes an event; a completed one has its contribution reverted.
func (s *EventService) DeleteEvent(ctx context.Context, user *model.User, eventID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		events := repository.NewEventRepository(tx)

		event, err := events.FindByID(ctx, user.ID, eventID)
		if err != nil {
			return err
		}
		if err := events.Delete(ctx, user.ID, eventID); err != nil {
			return err
		}

		reconciler := NewChangeReconciler(repository.NewBucketRepository(tx), repository.NewLabelRepository(tx))
		return reconciler.Reconcile(ctx, changeBetween(event, nil, user.Timezone))
	})
}

func (s *EventService) GetEvent(ctx context.Context, user *model.User, eventID uint) (*model.Event, error) {
	return repository.NewEventRepository(s.db).FindByID(ctx, user.ID, eventID)
}

func (s *EventService) ListRecent(ctx context.Context, user *model.User, limit int) ([]model.Event, error) {
	return repository.NewEventRepository(s.db).ListRecent(ctx, user.ID, limit)
}

// changeBetween builds the reconciliation snapshot for a before/after event
// pair; either side may be nil (create or delete).
func changeBetween(before, after *model.Event, timezone string) EventChange {
	change := EventChange{Timezone: timezone}
	if before != nil {
		change.UserID = before.UserID
		change.OldLabelID = before.LabelID
		change.OldStart = before.StartAt
		change.OldMinutes = before.DurationMinutes
		change.WasCompleted = before.IsCompleted
	}
	if after != nil {
		change.UserID = after.UserID
		change.NewLabelID = after.LabelID
		change.NewStart = after.StartAt
		change.NewMinutes = after.DurationMinutes
		change.IsCompleted = after.IsCompleted
	}
	return change
}
