package request

import (
	"context"

	"github.com/iota-uz/servicedesk/pkg/serrors"
)

var ErrNotFound = serrors.NewError("REQUEST_NOT_FOUND", "request not found", "Requests.Errors.NotFound")

// FindParams is the combined status + search criteria. Empty fields do not
// restrict.
type FindParams struct {
	Status string
	Search string
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Find(ctx context.Context, params *FindParams) ([]Request, error)
	Create(ctx context.Context, data Request) (Request, error)
	Update(ctx context.Context, data Request) (Request, error)
	Delete(ctx context.Context, id string) (Request, error)
}
