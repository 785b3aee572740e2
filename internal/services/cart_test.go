package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NhatNguyen1502/ecommerce-services/internal/entity"
	"github.com/NhatNguyen1502/ecommerce-services/internal/repo"
)

type cartKey struct {
	customerID uuid.UUID
	productID  uuid.UUID
}

type fakeCartRepo struct {
	items map[cartKey]entity.CartItem
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[cartKey]entity.CartItem)}
}

func (f *fakeCartRepo) GetCartItem(_ context.Context, customerID, productID uuid.UUID) (entity.CartItem, error) {
	item, ok := f.items[cartKey{customerID, productID}]
	if !ok {
		return entity.CartItem{}, repo.ErrCartItemNotFound
	}
	return item, nil
}

func (f *fakeCartRepo) SaveCartItem(_ context.Context, item *entity.CartItem) error {
	f.items[cartKey{item.CustomerID, item.ProductID}] = *item
	return nil
}

func (f *fakeCartRepo) DeleteCartItem(_ context.Context, item *entity.CartItem) error {
	delete(f.items, cartKey{item.CustomerID, item.ProductID})
	return nil
}

func (f *fakeCartRepo) CountCartItems(_ context.Context, customerID uuid.UUID) (int64, error) {
	var n int64
	for key := range f.items {
		if key.customerID == customerID {
			n++
		}
	}
	return n, nil
}

func (f *fakeCartRepo) ListCartItems(_ context.Context, customerID uuid.UUID) ([]entity.CartItem, error) {
	var items []entity.CartItem
	for key, item := range f.items {
		if key.customerID == customerID {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakeProductGetter struct {
	products map[uuid.UUID]entity.Product
}

func (f *fakeProductGetter) GetProductByID(_ context.Context, id uuid.UUID) (entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return entity.Product{}, repo.ErrProductNotFound
	}
	return product, nil
}

func newTestCart(t *testing.T) (*Cart, *fakeCartRepo, *fakeProductGetter) {
	t.Helper()
	cartRepo := newFakeCartRepo()
	products := &fakeProductGetter{products: make(map[uuid.UUID]entity.Product)}
	return NewCart(discardLogger(), cartRepo, products), cartRepo, products
}

func seedProduct(products *fakeProductGetter, stock int) entity.Product {
	product := entity.Product{
		ID:       uuid.New(),
		Name:     "mug",
		Price:    9.5,
		Quantity: stock,
	}
	products.products[product.ID] = product
	return product
}

func TestAddToCart_Success(t *testing.T) {
	ctx := context.Background()
	cart, cartRepo, products := newTestCart(t)
	product := seedProduct(products, 10)
	customerID := uuid.New()

	require.NoError(t, cart.AddToCart(ctx, customerID, product.ID, 3))

	item, err := cartRepo.GetCartItem(ctx, customerID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	count, err := cart.CountItems(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddToCart_OverwritesQuantity(t *testing.T) {
	ctx := context.Background()
	cart, cartRepo, products := newTestCart(t)
	product := seedProduct(products, 10)
	customerID := uuid.New()

	require.NoError(t, cart.AddToCart(ctx, customerID, product.ID, 3))
	require.NoError(t, cart.AddToCart(ctx, customerID, product.ID, 5))

	item, err := cartRepo.GetCartItem(ctx, customerID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestAddToCart_InsufficientStock(t *testing.T) {
	cart, _, products := newTestCart(t)
	product := seedProduct(products, 2)

	err := cart.AddToCart(context.Background(), uuid.New(), product.ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	cart, _, _ := newTestCart(t)

	err := cart.AddToCart(context.Background(), uuid.New(), uuid.New(), 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddToCart_InvalidQuantity(t *testing.T) {
	cart, _, products := newTestCart(t)
	product := seedProduct(products, 10)

	err := cart.AddToCart(context.Background(), uuid.New(), product.ID, 0)
	assert.ErrorIs(t, err, ErrQuantityInvalid)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	cart, cartRepo, products := newTestCart(t)
	product := seedProduct(products, 10)
	customerID := uuid.New()

	require.NoError(t, cart.AddToCart(ctx, customerID, product.ID, 2))
	require.NoError(t, cart.UpdateQuantity(ctx, customerID, product.ID, 0))

	_, err := cartRepo.GetCartItem(ctx, customerID, product.ID)
	assert.ErrorIs(t, err, repo.ErrCartItemNotFound)
}

func TestUpdateQuantity_MissingLine(t *testing.T) {
	cart, _, products := newTestCart(t)
	product := seedProduct(products, 10)

	err := cart.UpdateQuantity(context.Background(), uuid.New(), product.ID, 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestUpdateQuantity_ChecksStock(t *testing.T) {
	ctx := context.Background()
	cart, cartRepo, products := newTestCart(t)
	product := seedProduct(products, 4)
	customerID := uuid.New()

	require.NoError(t, cart.AddToCart(ctx, customerID, product.ID, 2))

	// stock checked against the product snapshot on the line
	item, err := cartRepo.GetCartItem(ctx, customerID, product.ID)
	require.NoError(t, err)
	item.Product = product
	require.NoError(t, cartRepo.SaveCartItem(ctx, &item))

	assert.ErrorIs(t, cart.UpdateQuantity(ctx, customerID, product.ID, 9), ErrInsufficientStock)
	require.NoError(t, cart.UpdateQuantity(ctx, customerID, product.ID, 4))
}

func TestListItems_RendersProductFields(t *testing.T) {
	ctx := context.Background()
	cart, cartRepo, products := newTestCart(t)
	product := seedProduct(products, 10)
	customerID := uuid.New()

	require.NoError(t, cart.AddToCart(ctx, customerID, product.ID, 2))

	item, err := cartRepo.GetCartItem(ctx, customerID, product.ID)
	require.NoError(t, err)
	item.Product = product
	require.NoError(t, cartRepo.SaveCartItem(ctx, &item))

	lines, err := cart.ListItems(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, product.ID, lines[0].ProductID)
	assert.Equal(t, product.Name, lines[0].Name)
	assert.Equal(t, product.Price, lines[0].Price)
	assert.Equal(t, 2, lines[0].Quantity)
}
