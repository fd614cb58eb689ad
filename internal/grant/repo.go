package grant

import "context"

// Repository holds both pools. Agencies are not unique keys across the
// pools: an agency may be listed again while an active application for
// it is still running.
type Repository interface {
	Opportunities(ctx context.Context) ([]Opportunity, error)
	ReplaceOpportunities(ctx context.Context, os []Opportunity) error
	AddOpportunity(ctx context.Context, o Opportunity) error
	TakeOpportunity(ctx context.Context, id string) (Opportunity, bool, error)

	Actives(ctx context.Context) ([]Active, error)
	ReplaceActives(ctx context.Context, as []Active) error
	AddActive(ctx context.Context, a Active) error
}
