package service

import (
	"context"

	"time-tracker/internal/model"
	"time-tracker/internal/repository"
)

// LabelService provides helpers around labels.
type LabelService struct {
	repo *repository.LabelRepository
}

func NewLabelService(repo *repository.LabelRepository) *LabelService {
	return &LabelService{repo: repo}
}

func (s *LabelService) List(ctx context.Context, user *model.User) ([]model.Label, error) {
	return s.repo.ListByUser(ctx, user.ID)
}

func (s *LabelService) GetOrCreate(ctx context.Context, user *model.User, name string) (*model.Label, error) {
	return s.repo.GetOrCreate(ctx, user.ID, name)
}

func (s *LabelService) FindByName(ctx context.Context, user *model.User, name string) (*model.Label, error) {
	return s.repo.FindByName(ctx, user.ID, name)
}
