//go:build unit

package catalog_test

import (
	"testing"

	"huellitas/internal/domain/catalog"
	"huellitas/internal/domain/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProducts() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Alimento Premium Perros", Category: "alimento", Species: "perro", Age: "adulto", Brand: "nutripet", Size: "grande", Ingredients: "pollo", Price: 89000, Stock: 12, Rating: 4.8},
		{ID: 2, Name: "Alimento Gatitos", Category: "alimento", Species: "gato", Age: "cachorro", Brand: "felinex", Size: "pequeno", Ingredients: "salmon", Price: 52000, Stock: 8, Rating: 4.5},
		{ID: 3, Name: "Shampoo Hipoalergénico", Category: "higiene", Species: "all", Age: "all", Brand: "petcare", Size: "all", Ingredients: "avena", Price: 25000, Stock: 3, Rating: 4.9},
		{ID: 4, Name: "Juguete Kong", Category: "juguetes", Species: "perro", Age: "all", Brand: "kong", Size: "mediano", Ingredients: "", Price: 35000, Stock: 0, Rating: 4.2},
	}
}

func TestFilter(t *testing.T) {
	products := fixtureProducts()

	ids := func(got []product.Product) []int64 {
		out := make([]int64, len(got))
		for i, p := range got {
			out[i] = p.ID
		}
		return out
	}

	cases := []struct {
		name   string
		filter catalog.Filter
		want   []int64
	}{
		{"no constraints", catalog.Filter{}, []int64{1, 2, 3, 4}},
		{"all is no constraint", catalog.Filter{Category: "all", Species: "all"}, []int64{1, 2, 3, 4}},
		{"by category", catalog.Filter{Category: "alimento"}, []int64{1, 2}},
		{"by species", catalog.Filter{Species: "gato"}, []int64{2}},
		{"soft age matches products tagged all", catalog.Filter{Age: "senior"}, []int64{3, 4}},
		{"by brand", catalog.Filter{Brand: "kong"}, []int64{4}},
		{"price band", catalog.Filter{PriceRange: "0-25000"}, []int64{3}},
		{"price band open top", catalog.Filter{PriceRange: "100000+"}, nil},
		{"in stock", catalog.Filter{Stock: catalog.StockIn}, []int64{1, 2, 3}},
		{"low stock", catalog.Filter{Stock: catalog.StockLow}, []int64{3, 4}},
		{"search is case insensitive", catalog.Filter{Search: "ALIMENTO"}, []int64{1, 2}},
		{"search hits species", catalog.Filter{Search: "gato"}, []int64{2}},
		{"combined", catalog.Filter{Category: "alimento", Species: "perro"}, []int64{1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Apply(products)
			if tc.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tc.want, ids(got))
			}
		})
	}
}

func TestSort(t *testing.T) {
	cases := []struct {
		name string
		mode catalog.SortMode
		want []int64
	}{
		{"price ascending", catalog.SortPriceAsc, []int64{3, 4, 2, 1}},
		{"price descending", catalog.SortPriceDesc, []int64{1, 2, 4, 3}},
		{"name ascending", catalog.SortNameAsc, []int64{2, 1, 4, 3}},
		{"popularity is rating descending", catalog.SortPopularity, []int64{3, 1, 2, 4}},
		{"newest is id descending", catalog.SortNewest, []int64{4, 3, 2, 1}},
		{"unknown mode keeps order", catalog.SortMode("random"), []int64{1, 2, 3, 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			products := fixtureProducts()
			catalog.Sort(products, tc.mode)

			got := make([]int64, len(products))
			for i, p := range products {
				got[i] = p.ID
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSortModeIsValid(t *testing.T) {
	assert.True(t, catalog.SortPriceAsc.IsValid())
	assert.True(t, catalog.SortNewest.IsValid())
	assert.False(t, catalog.SortMode("by-weight").IsValid())
	assert.False(t, catalog.SortMode("").IsValid())
}

func TestPaginate(t *testing.T) {
	products := fixtureProducts()

	t.Run("slices one based pages", func(t *testing.T) {
		page := catalog.Paginate(products, 1, 3)

		require.Len(t, page.Items, 3)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 2, page.TotalPages)

		page = catalog.Paginate(products, 2, 3)
		require.Len(t, page.Items, 1)
		assert.Equal(t, int64(4), page.Items[0].ID)
	})

	t.Run("out of range page keeps totals", func(t *testing.T) {
		page := catalog.Paginate(products, 9, 3)

		assert.Empty(t, page.Items)
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 2, page.TotalPages)
	})

	t.Run("defaults repair bad arguments", func(t *testing.T) {
		page := catalog.Paginate(products, 0, 0)

		assert.Equal(t, 1, page.Page)
		assert.Equal(t, catalog.DefaultPerPage, page.PerPage)
		assert.Len(t, page.Items, 4)
	})
}
