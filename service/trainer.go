package service

import (
	"context"

	"gymsphere/domain"
	"gymsphere/utils"
)

type trainerService struct {
	trainerRepo domain.TrainerRepository
}

func NewTrainerService(trainerRepo domain.TrainerRepository) domain.TrainerUseCase {
	return &trainerService{trainerRepo: trainerRepo}
}

func (s *trainerService) Create(ctx context.Context, trainer *domain.Trainer) (*domain.Trainer, error) {
	trainer.Active = true
	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

func (s *trainerService) GetByID(ctx context.Context, id int) (*domain.Trainer, error) {
	return s.trainerRepo.GetByID(ctx, id)
}

func (s *trainerService) List(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainerRepo.List(ctx)
}

func (s *trainerService) Update(ctx context.Context, trainer *domain.Trainer) error {
	return s.trainerRepo.Update(ctx, trainer)
}

func (s *trainerService) Delete(ctx context.Context, id int) error {
	return s.trainerRepo.Delete(ctx, id)
}

func (s *trainerService) ListAssignments(ctx context.Context, filter domain.AssignmentFilter) ([]domain.TrainerAssignment, error) {
	return s.trainerRepo.ListAssignments(ctx, filter)
}

func (s *trainerService) CreateAssignment(ctx context.Context, assignment *domain.TrainerAssignment) (*domain.TrainerAssignment, error) {
	if assignment.StartDate == "" {
		assignment.StartDate = utils.Today()
	}
	assignment.Active = true
	if err := s.trainerRepo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}
