package service

import (
	"context"
	"errors"

	"gymsphere/domain"
)

type classService struct {
	classRepo domain.ClassRepository
}

func NewClassService(classRepo domain.ClassRepository) domain.ClassUseCase {
	return &classService{classRepo: classRepo}
}

func (s *classService) Create(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	if class.DurationMinutes <= 0 {
		return nil, errors.New("class duration must be positive")
	}
	if class.MaxCapacity <= 0 {
		return nil, errors.New("class capacity must be positive")
	}
	class.Active = true
	if err := s.classRepo.Create(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

func (s *classService) GetByID(ctx context.Context, id int) (*domain.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

func (s *classService) List(ctx context.Context) ([]domain.Class, error) {
	return s.classRepo.List(ctx)
}

func (s *classService) Update(ctx context.Context, class *domain.Class) error {
	if class.DurationMinutes <= 0 || class.MaxCapacity <= 0 {
		return errors.New("class duration and capacity must be positive")
	}
	return s.classRepo.Update(ctx, class)
}

func (s *classService) Delete(ctx context.Context, id int) error {
	return s.classRepo.Delete(ctx, id)
}
