package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/authz"
	appErrors "github.com/shopcore-labs/shopcore/internal/errors"
	"github.com/shopcore-labs/shopcore/internal/models"
	repository "github.com/shopcore-labs/shopcore/internal/repositories"
	"github.com/shopcore-labs/shopcore/internal/repositories/mocks"
	service "github.com/shopcore-labs/shopcore/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupCartServiceTest(t *testing.T) (service.CartService, *mocks.CartRepository, *mocks.ProductRepository) {
	mockCartRepo := mocks.NewCartRepository(t)
	mockProductRepo := mocks.NewProductRepository(t)
	cartService := service.NewCartService(mockCartRepo, mockProductRepo, authz.NewGuard())

	return cartService, mockCartRepo, mockProductRepo
}

func cartFor(userID uuid.UUID, items map[string]models.CartItem) *models.Cart {
	return &models.Cart{
		ID:      uuid.New(),
		UserID:  uuid.NullUUID{UUID: userID, Valid: true},
		Items:   items,
		Version: 1,
	}
}

func TestAddItem_NewProduct(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, mockProductRepo := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	claims := customerClaims(userID)
	cart := cartFor(userID, map[string]models.CartItem{})

	catalogPrice := decimal.NewFromFloat(49.99)
	product := &models.Product{ID: 7, Name: "Widget", Price: catalogPrice, StockQuantity: 10, Active: true}

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
	mockProductRepo.On("GetProductByID", ctx, int64(7)).Return(product, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, cart).Return(nil).Once()

	// Act
	result, err := cartService.AddItem(ctx, claims, &models.AddItemRequest{ProductID: 7, Quantity: 2})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	item := result.Items["7"]
	assert.Equal(t, int64(2), item.Quantity)
	assert.True(t, item.UnitPrice.Equal(catalogPrice), "unit price comes from the catalog, not the client")
}

func TestAddItem_DuplicateAddIncrementsQuantity(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	claims := customerClaims(userID)

	frozenPrice := decimal.NewFromFloat(30.00)
	cart := cartFor(userID, map[string]models.CartItem{
		"7": {ProductID: 7, Quantity: 1, UnitPrice: frozenPrice},
	})

	// No product lookup: the item is already in the cart.
	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, cart).Return(nil).Once()

	// Act
	result, err := cartService.AddItem(ctx, claims, &models.AddItemRequest{ProductID: 7, Quantity: 3})

	// Assert
	require.NoError(t, err)
	item := result.Items["7"]
	assert.Equal(t, int64(4), item.Quantity)
	assert.True(t, item.UnitPrice.Equal(frozenPrice), "price stays frozen at first-add time")
}

func TestAddItem_CreatesCartOnFirstUse(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, mockProductRepo := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	claims := customerClaims(userID)

	product := &models.Product{ID: 7, Price: decimal.NewFromFloat(5.00), Active: true}

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(nil, sql.ErrNoRows).Once()
	mockCartRepo.On("CreateCart", ctx, mock.MatchedBy(func(c *models.Cart) bool {
		return c.UserID.Valid && c.UserID.UUID == userID && len(c.Items) == 0
	})).Return(nil).Once()
	mockProductRepo.On("GetProductByID", ctx, int64(7)).Return(product, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, mock.AnythingOfType("*models.Cart")).Return(nil).Once()

	// Act
	result, err := cartService.AddItem(ctx, claims, &models.AddItemRequest{ProductID: 7, Quantity: 1})

	// Assert
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
}

func TestAddItem_ProductNotFound(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, mockProductRepo := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := cartFor(userID, map[string]models.CartItem{})

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
	mockProductRepo.On("GetProductByID", ctx, int64(404)).Return(nil, sql.ErrNoRows).Once()

	// Act
	result, err := cartService.AddItem(ctx, customerClaims(userID), &models.AddItemRequest{ProductID: 404, Quantity: 1})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}

func TestAddItem_InactiveProduct(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, mockProductRepo := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := cartFor(userID, map[string]models.CartItem{})

	inactive := &models.Product{ID: 7, Price: decimal.NewFromFloat(5.00), Active: false}

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
	mockProductRepo.On("GetProductByID", ctx, int64(7)).Return(inactive, nil).Once()

	// Act
	result, err := cartService.AddItem(ctx, customerClaims(userID), &models.AddItemRequest{ProductID: 7, Quantity: 1})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
}

func TestAddItem_RetriesOnVersionConflict(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	claims := customerClaims(userID)

	price := decimal.NewFromFloat(10.00)
	staleCart := cartFor(userID, map[string]models.CartItem{
		"7": {ProductID: 7, Quantity: 1, UnitPrice: price},
	})
	freshCart := cartFor(userID, map[string]models.CartItem{
		"7": {ProductID: 7, Quantity: 5, UnitPrice: price},
	})
	freshCart.Version = 2

	// First write loses the CAS race; the retry re-reads and succeeds.
	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(staleCart, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, staleCart).Return(repository.ErrVersionConflict).Once()
	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(freshCart, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, freshCart).Return(nil).Once()

	// Act
	result, err := cartService.AddItem(ctx, claims, &models.AddItemRequest{ProductID: 7, Quantity: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(6), result.Items["7"].Quantity, "retry applies the increment to the fresh state")
}

func TestAddItem_ExhaustsRetries(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	claims := customerClaims(userID)

	price := decimal.NewFromFloat(10.00)

	for range 3 {
		cart := cartFor(userID, map[string]models.CartItem{
			"7": {ProductID: 7, Quantity: 1, UnitPrice: price},
		})
		mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
		mockCartRepo.On("UpdateCartItems", ctx, cart).Return(repository.ErrVersionConflict).Once()
	}

	// Act
	result, err := cartService.AddItem(ctx, claims, &models.AddItemRequest{ProductID: 7, Quantity: 1})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
}

func TestUpdateQuantity_SetsNewQuantity(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := cartFor(userID, map[string]models.CartItem{
		"7": {ProductID: 7, Quantity: 1, UnitPrice: decimal.NewFromFloat(10.00)},
	})

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, cart).Return(nil).Once()

	// Act
	result, err := cartService.UpdateQuantity(ctx, customerClaims(userID), &models.UpdateQuantityRequest{ProductID: 7, Quantity: 9})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.Items["7"].Quantity)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := cartFor(userID, map[string]models.CartItem{
		"7": {ProductID: 7, Quantity: 3, UnitPrice: decimal.NewFromFloat(10.00)},
	})

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, cart).Return(nil).Once()

	// Act
	result, err := cartService.UpdateQuantity(ctx, customerClaims(userID), &models.UpdateQuantityRequest{ProductID: 7, Quantity: 0})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestUpdateQuantity_ItemNotInCart(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := cartFor(userID, map[string]models.CartItem{})

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()

	// Act
	result, err := cartService.UpdateQuantity(ctx, customerClaims(userID), &models.UpdateQuantityRequest{ProductID: 7, Quantity: 1})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	assert.Contains(t, appErr.Error(), "Item not found in the cart")
}

func TestRemoveItem_DelegatesToZeroQuantity(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()
	cart := cartFor(userID, map[string]models.CartItem{
		"7": {ProductID: 7, Quantity: 3, UnitPrice: decimal.NewFromFloat(10.00)},
	})

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(cart, nil).Once()
	mockCartRepo.On("UpdateCartItems", ctx, cart).Return(nil).Once()

	// Act
	result, err := cartService.RemoveItem(ctx, customerClaims(userID), 7)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestGetCartByID_GuestCartAccessibleToAnyHolder(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	guestCart := &models.Cart{ID: uuid.New(), Items: map[string]models.CartItem{}}

	mockCartRepo.On("GetCartByID", ctx, guestCart.ID).Return(guestCart, nil).Once()

	// Act
	result, err := cartService.GetCartByID(ctx, customerClaims(uuid.New()), guestCart.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, guestCart, result)
}

func TestGetCartByID_ForbiddenForStranger(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	cart := cartFor(uuid.New(), map[string]models.CartItem{})

	mockCartRepo.On("GetCartByID", ctx, cart.ID).Return(cart, nil).Once()

	// Act
	result, err := cartService.GetCartByID(ctx, customerClaims(uuid.New()), cart.ID)

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeForbidden, appErr.Code)
}

func TestGetCartForUser_NotFound(t *testing.T) {
	// Arrange
	cartService, mockCartRepo, _ := setupCartServiceTest(t)
	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.On("GetCartByUserID", ctx, userID).Return(nil, errors.New("no rows")).Once()

	// Act
	result, err := cartService.GetCartForUser(ctx, customerClaims(userID))

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}
