package equipment

import "context"

type Repository interface {
	Seed(ctx context.Context, es []Equipment) error
	List(ctx context.Context) ([]Equipment, error)
	Get(ctx context.Context, id string) (Equipment, bool, error)
	Add(ctx context.Context, e Equipment) error
	Update(ctx context.Context, e Equipment) error
	UpdateMany(ctx context.Context, es []Equipment) error
	Count(ctx context.Context) (int, error)
}
