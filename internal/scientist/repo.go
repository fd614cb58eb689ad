package scientist

import "context"

type Repository interface {
	Seed(ctx context.Context, ss []Scientist) error
	List(ctx context.Context) ([]Scientist, error)
	Get(ctx context.Context, id string) (Scientist, bool, error)
	Add(ctx context.Context, s Scientist) error
	Update(ctx context.Context, s Scientist) error
	UpdateMany(ctx context.Context, ss []Scientist) error
	Remove(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
