package queries

import (
	"context"

	"huellitas/internal/domain/catalog"
	"huellitas/internal/domain/product"
	"huellitas/internal/infra"
	"huellitas/internal/pkg/errs"
)

var ErrProductNotFound = errs.New("product not found")

// ProductListParams carries the storefront's filter, sort and paging
// choices. Filtering runs in memory over the active catalog, which is
// small enough that pushing it into SQL buys nothing.
type ProductListParams struct {
	Filter  catalog.Filter
	Sort    catalog.SortMode
	Page    int
	PerPage int
}

type ProductQueries interface {
	ListProducts(ctx context.Context, params ProductListParams) (*catalog.Page, error)
	GetProduct(ctx context.Context, id int64) (*product.Product, error)
}

type ProductReadStore interface {
	ListActive(ctx context.Context) ([]product.Product, error)
	FindByID(ctx context.Context, id int64) (*product.Product, error)
}

type productQueriesImpl struct {
	readStore ProductReadStore
}

func NewProductQueries(readStore ProductReadStore) ProductQueries {
	return &productQueriesImpl{
		readStore: readStore,
	}
}

func (q *productQueriesImpl) ListProducts(ctx context.Context, params ProductListParams) (*catalog.Page, error) {
	products, err := q.readStore.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	filtered := params.Filter.Apply(products)
	catalog.Sort(filtered, params.Sort)
	page := catalog.Paginate(filtered, params.Page, params.PerPage)
	return &page, nil
}

func (q *productQueriesImpl) GetProduct(ctx context.Context, id int64) (*product.Product, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
