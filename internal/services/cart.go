package service

import (
	"context"
	"database/sql"
	goerrors "errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/authz"
	"github.com/shopcore-labs/shopcore/internal/errors"
	"github.com/shopcore-labs/shopcore/internal/models"
	repository "github.com/shopcore-labs/shopcore/internal/repositories"
)

// Cart writes race only when the same cart is hit concurrently; the
// version CAS plus this bounded retry keeps a duplicate-add increment
// from being lost without holding any lock across the read.
const maxCartWriteRetries = 3

type CartService interface {
	GetCartForUser(ctx context.Context, claims *models.Claims) (*models.Cart, error)
	GetCartByID(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, claims *models.Claims, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, claims *models.Claims, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, claims *models.Claims, productID int64) (*models.Cart, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
	guard       *authz.Guard
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository, guard *authz.Guard) CartService {
	return &cartService{
		repo:        repo,
		productRepo: productRepo,
		guard:       guard,
	}
}

func (s *cartService) GetCartForUser(ctx context.Context, claims *models.Claims) (*models.Cart, error) {

	cart, err := s.repo.GetCartByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	return cart, nil
}

func (s *cartService) GetCartByID(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCartByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	if decision := s.guard.RequireCartAccess(claims, cart); !decision.Allowed {
		return nil, errors.ForbiddenError("You don't have permission to access this cart").WithDetail(decision.Reason)
	}

	return cart, nil
}

// AddItem creates the cart on first use. Adding a product already in
// the cart increases its quantity; the unit price stays frozen at what
// it was when the product was first added. The price is always read
// from the catalog, never from the client.
func (s *cartService) AddItem(ctx context.Context, claims *models.Claims, req *models.AddItemRequest) (*models.Cart, error) {

	for attempt := 0; attempt < maxCartWriteRetries; attempt++ {

		cart, err := s.repo.GetCartByUserID(ctx, claims.UserID)
		if err != nil {
			if !goerrors.Is(err, sql.ErrNoRows) {
				return nil, errors.DatabaseError("Failed to load cart").WithError(err)
			}

			cart = &models.Cart{
				ID:     uuid.New(),
				UserID: uuid.NullUUID{UUID: claims.UserID, Valid: true},
				Items:  make(map[string]models.CartItem),
			}

			if err := s.repo.CreateCart(ctx, cart); err != nil {
				if repository.IsUniqueViolation(err) {
					// Lost the creation race; re-read and retry.
					continue
				}
				return nil, errors.DatabaseError("Failed to create cart").WithError(err)
			}
		}

		key := strconv.FormatInt(req.ProductID, 10)

		if item, ok := cart.Items[key]; ok {
			item.Quantity += req.Quantity
			cart.Items[key] = item
		} else {
			product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
			if err != nil {
				return nil, errors.NotFoundError("Product not found").WithError(err)
			}

			if !product.Active {
				return nil, errors.BadRequestError("Product is not available")
			}

			cart.Items[key] = models.CartItem{
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
				UnitPrice: product.Price,
			}
		}

		err = s.repo.UpdateCartItems(ctx, cart)
		if goerrors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, errors.DatabaseError("Failed to update cart").WithError(err)
		}

		return cart, nil
	}

	return nil, errors.ConflictError("Cart is being modified concurrently, please retry")
}

func (s *cartService) UpdateQuantity(ctx context.Context, claims *models.Claims, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	for attempt := 0; attempt < maxCartWriteRetries; attempt++ {

		cart, err := s.repo.GetCartByUserID(ctx, claims.UserID)
		if err != nil {
			return nil, errors.NotFoundError("Cart not found").WithError(err)
		}

		key := strconv.FormatInt(req.ProductID, 10)

		item, exists := cart.Items[key]
		if !exists {
			return nil, errors.BadRequestError("Item not found in the cart")
		}

		if req.Quantity == 0 {
			delete(cart.Items, key)
		} else {
			item.Quantity = req.Quantity
			cart.Items[key] = item
		}

		err = s.repo.UpdateCartItems(ctx, cart)
		if goerrors.Is(err, repository.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return nil, errors.DatabaseError("Failed to update cart").WithError(err)
		}

		return cart, nil
	}

	return nil, errors.ConflictError("Cart is being modified concurrently, please retry")
}

func (s *cartService) RemoveItem(ctx context.Context, claims *models.Claims, productID int64) (*models.Cart, error) {
	return s.UpdateQuantity(ctx, claims, &models.UpdateQuantityRequest{ProductID: productID, Quantity: 0})
}
