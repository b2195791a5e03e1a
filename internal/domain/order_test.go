package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "radagast/internal/errors"
)

func testClient() *Client {
	return &Client{
		ID:       "c1",
		Name:     "Client 1",
		Email:    "client@test.com",
		Document: "123456789",
		Address: Address{
			Street:     "Street 1",
			Number:     "123",
			Complement: "Apt 1",
			City:       "City 1",
			State:      "State 1",
			ZipCode:    "12345",
		},
	}
}

func TestNewOrder_TotalIsSumOfLinePrices(t *testing.T) {
	products := []CatalogProduct{
		{ID: "p1", Name: "Product 1", Description: "Product 1 description", SalesPrice: 100},
		{ID: "p2", Name: "Product 2", Description: "Product 2 description", SalesPrice: 200},
	}

	order, err := NewOrder(testClient(), products)

	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, 300.0, order.Total)
	assert.Len(t, order.Products, 2)
}

func TestNewOrder_GeneratesUniqueIDs(t *testing.T) {
	products := []CatalogProduct{{ID: "p1", SalesPrice: 10}}

	first, err := NewOrder(testClient(), products)
	assert.NoError(t, err)
	second, err := NewOrder(testClient(), products)
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewOrder_DuplicateProductsProduceDuplicateLines(t *testing.T) {
	products := []CatalogProduct{
		{ID: "p1", SalesPrice: 50},
		{ID: "p1", SalesPrice: 50},
	}

	order, err := NewOrder(testClient(), products)

	assert.NoError(t, err)
	assert.Len(t, order.Products, 2)
	assert.Equal(t, 100.0, order.Total)
}

func TestNewOrder_RequiresClient(t *testing.T) {
	_, err := NewOrder(nil, []CatalogProduct{{ID: "p1", SalesPrice: 10}})

	assert.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestNewOrder_RequiresAtLeastOneProduct(t *testing.T) {
	_, err := NewOrder(testClient(), nil)

	assert.Error(t, err)
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestOrder_Approve(t *testing.T) {
	order, err := NewOrder(testClient(), []CatalogProduct{{ID: "p1", SalesPrice: 100}})
	assert.NoError(t, err)

	order.Approve()

	assert.Equal(t, OrderStatusApproved, order.Status)
	assert.Equal(t, 100.0, order.Total)
}

func TestRestoreOrder_KeepsPersistedState(t *testing.T) {
	client := testClient()
	products := []CatalogProduct{{ID: "p1", Name: "Product 1", SalesPrice: 100}}

	order := RestoreOrder("o1", client, products, OrderStatusApproved, 100)

	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, OrderStatusApproved, order.Status)
	assert.Equal(t, 100.0, order.Total)
	assert.Equal(t, client, order.Client)
}
