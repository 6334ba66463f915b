package domain

import "context"

type ClassRepository interface {
	Create(ctx context.Context, class *Class) error
	GetByID(ctx context.Context, id int) (*Class, error)
	List(ctx context.Context) ([]Class, error)
	Update(ctx context.Context, class *Class) error
	Delete(ctx context.Context, id int) error
}

type ClassUseCase interface {
	Create(ctx context.Context, class *Class) (*Class, error)
	GetByID(ctx context.Context, id int) (*Class, error)
	List(ctx context.Context) ([]Class, error)
	Update(ctx context.Context, class *Class) error
	Delete(ctx context.Context, id int) error
}
