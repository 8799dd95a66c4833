// Package catalog provides the static, read-only product list the simulator
// sells from. Products are resolved by id during cart mutations; the catalog
// itself never changes at runtime.
package catalog

import (
	"github.com/utafrali/cartsim/internal/domain"
)

// Catalog is a fixed list of products with id lookup.
type Catalog struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// New builds a catalog from the given products. Insertion order is the
// display order.
func New(products []domain.Product) *Catalog {
	byID := make(map[int]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Default returns the built-in bathroom-fixtures catalog.
func Default() *Catalog {
	return New([]domain.Product{
		{ID: 1, Name: "Bacha cerámica", Price: 45000},
		{ID: 2, Name: "Inodoro corto", Price: 95000},
		{ID: 3, Name: "Bidet estándar", Price: 70000},
		{ID: 4, Name: "Grifería monocomando", Price: 82000},
		{ID: 5, Name: "Kit instalación", Price: 25000},
	})
}

// FindByID resolves a product by id. The second return value reports whether
// the id exists.
func (c *Catalog) FindByID(id int) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the catalog in display order. Callers must not mutate the
// returned slice.
func (c *Catalog) Products() []domain.Product {
	return c.products
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
