package queries

import (
	"context"

	"huellitas/internal/domain/service"
	"huellitas/internal/infra"
	"huellitas/internal/pkg/errs"
)

var ErrServiceNotFound = errs.New("service not found")

type ServiceQueries interface {
	ListServices(ctx context.Context) ([]service.Service, error)
	GetService(ctx context.Context, id int64) (*service.Service, error)
}

type ServiceReadStore interface {
	ListActive(ctx context.Context) ([]service.Service, error)
	FindByID(ctx context.Context, id int64) (*service.Service, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{
		readStore: readStore,
	}
}

func (q *serviceQueriesImpl) ListServices(ctx context.Context) ([]service.Service, error) {
	return q.readStore.ListActive(ctx)
}

func (q *serviceQueriesImpl) GetService(ctx context.Context, id int64) (*service.Service, error) {
	svc, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}
