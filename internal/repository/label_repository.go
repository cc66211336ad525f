package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"time-tracker/internal/model"
)

// LabelRepository manages tracking labels.
type LabelRepository struct {
	db *gorm.DB
}

func NewLabelRepository(db *gorm.DB) *LabelRepository {
	return &LabelRepository{db: db}
}

func (r *LabelRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*model.Label, error) {
	if name == "" {
		return nil, nil
	}

	var label model.Label
	db := r.db.WithContext(ctx)
	err := db.Where("user_id = ? AND name = ?", userID, name).First(&label).Error
	switch {
	case err == nil:
		return &label, nil
	case err == gorm.ErrRecordNotFound:
		label = model.Label{UserID: userID, Name: name}
		if err := db.Create(&label).Error; err != nil {
			return nil, fmt.Errorf("create label: %w", err)
		}
		return &label, nil
	default:
		return nil, fmt.Errorf("find label: %w", err)
	}
}

func (r *LabelRepository) ListByUser(ctx context.Context, userID uint) ([]model.Label, error) {
	var labels []model.Label
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *LabelRepository) FindByID(ctx context.Context, userID, labelID uint) (*model.Label, error) {
	var label model.Label
	if err := r.db.WithContext(ctx).Where("user_id = ? AND id = ?", userID, labelID).First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

func (r *LabelRepository) FindByName(ctx context.Context, userID uint, name string) (*model.Label, error) {
	var label model.Label
	if err := r.db.WithContext(ctx).Where("user_id = ? AND name = ?", userID, name).First(&label).Error; err != nil {
		return nil, err
	}
	return &label, nil
}
