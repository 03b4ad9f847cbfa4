package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	ListInRange(ctx context.Context, start, end time.Time) ([]*Holiday, error)
	ListByYear(ctx context.Context, year int) ([]*Holiday, error)
	Delete(ctx context.Context, id string) (bool, error)
}
