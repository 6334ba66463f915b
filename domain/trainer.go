package domain

import "context"

// AssignmentFilter narrows the assignment listing; zero values mean no filter.
type AssignmentFilter struct {
	MemberUUID string
	TrainerID  int
}

type TrainerRepository interface {
	Create(ctx context.Context, trainer *Trainer) error
	GetByID(ctx context.Context, id int) (*Trainer, error)
	List(ctx context.Context) ([]Trainer, error)
	Update(ctx context.Context, trainer *Trainer) error
	Delete(ctx context.Context, id int) error

	ListAssignments(ctx context.Context, filter AssignmentFilter) ([]TrainerAssignment, error)
	CreateAssignment(ctx context.Context, assignment *TrainerAssignment) error
}

type TrainerUseCase interface {
	Create(ctx context.Context, trainer *Trainer) (*Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	List(ctx context.Context) ([]Trainer, error)
	Update(ctx context.Context, trainer *Trainer) error
	Delete(ctx context.Context, id int) error

	ListAssignments(ctx context.Context, filter AssignmentFilter) ([]TrainerAssignment, error)
	CreateAssignment(ctx context.Context, assignment *TrainerAssignment) (*TrainerAssignment, error)
}
