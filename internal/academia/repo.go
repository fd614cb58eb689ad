package academia

import "context"

type Repository interface {
	Seed(ctx context.Context, ws []Worker) error
	List(ctx context.Context) ([]Worker, error)
	Get(ctx context.Context, id string) (Worker, bool, error)
	Add(ctx context.Context, w Worker) error
	Update(ctx context.Context, w Worker) error
	UpdateMany(ctx context.Context, ws []Worker) error
	Remove(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
