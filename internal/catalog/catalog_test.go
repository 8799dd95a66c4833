package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/cartsim/internal/domain"
)

func TestDefault_ContainsFiveProducts(t *testing.T) {
	c := Default()
	assert.Equal(t, 5, c.Len())
}

func TestDefault_PricesAndOrder(t *testing.T) {
	c := Default()
	products := c.Products()
	require.Len(t, products, 5)

	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, float64(45000), products[0].Price)
	assert.Equal(t, 2, products[1].ID)
	assert.Equal(t, float64(95000), products[1].Price)
	assert.Equal(t, 5, products[4].ID)
	assert.Equal(t, float64(25000), products[4].Price)
}

func TestFindByID_Known(t *testing.T) {
	c := Default()
	p, ok := c.FindByID(3)
	require.True(t, ok)
	assert.Equal(t, "Bidet estándar", p.Name)
	assert.Equal(t, float64(70000), p.Price)
}

func TestFindByID_Unknown(t *testing.T) {
	c := Default()
	_, ok := c.FindByID(42)
	assert.False(t, ok)
}

func TestNew_CustomProducts(t *testing.T) {
	c := New([]domain.Product{
		{ID: 10, Name: "Espejo", Price: 12000},
	})
	require.Equal(t, 1, c.Len())

	p, ok := c.FindByID(10)
	require.True(t, ok)
	assert.Equal(t, "Espejo", p.Name)
}
