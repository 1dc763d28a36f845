package service

import (
	"context"
	goerrors "errors"

	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/authz"
	"github.com/shopcore-labs/shopcore/internal/errors"
	"github.com/shopcore-labs/shopcore/internal/metrics"
	"github.com/shopcore-labs/shopcore/internal/models"
	repository "github.com/shopcore-labs/shopcore/internal/repositories"
)

type OrderService interface {
	ConvertCart(ctx context.Context, claims *models.Claims, cartID uuid.UUID) (*models.Order, error)
	GetOrderByID(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, claims *models.Claims, page, size int) ([]models.Order, int, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	guard     *authz.Guard
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, guard *authz.Guard) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		guard:     guard,
	}
}

// ConvertCart turns a cart into an immutable order. Authorization and
// the empty-cart precondition are checked up front with no side
// effects; everything stateful happens inside the repository's
// transaction, which re-checks emptiness under the cart row lock.
func (s *orderService) ConvertCart(ctx context.Context, claims *models.Claims, cartID uuid.UUID) (*models.Order, error) {

	cart, err := s.cartRepo.GetCartByID(ctx, cartID)
	if err != nil {
		return nil, errors.NotFoundError("Cart not found").WithError(err)
	}

	if decision := s.guard.RequireCartAccess(claims, cart); !decision.Allowed {
		return nil, errors.ForbiddenError("You don't have permission to access this cart").WithDetail(decision.Reason)
	}

	if len(cart.Items) == 0 {
		return nil, errors.EmptyCartError("Cannot create order from an empty cart")
	}

	order, err := s.orderRepo.ConvertCart(ctx, cartID, claims.UserID)
	if err != nil {
		var (
			missingErr *repository.MissingProductError
			stockErr   *repository.InsufficientStockError
		)

		switch {
		case goerrors.Is(err, repository.ErrCartEmpty):
			// A concurrent conversion won the cart row lock.
			metrics.OrderConversionFailed("empty_cart")
			return nil, errors.EmptyCartError("Cannot create order from an empty cart").WithError(err)
		case goerrors.As(err, &missingErr):
			metrics.OrderConversionFailed("missing_product")
			return nil, errors.NotFoundError(missingErr.Error()).WithError(err)
		case goerrors.As(err, &stockErr):
			metrics.OrderConversionFailed("insufficient_stock")
			return nil, errors.InsufficientStockError(stockErr.Error()).WithError(err)
		default:
			metrics.OrderConversionFailed("internal")
			return nil, errors.DatabaseError("Failed to convert cart").WithError(err)
		}
	}

	metrics.OrderConverted()

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderById(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if decision := s.guard.RequireOwnerOrAdmin(claims, order.CustomerID); !decision.Allowed {
		return nil, errors.ForbiddenError("You don't have permission to access this order").WithDetail(decision.Reason)
	}

	return order, nil
}

func (s *orderService) ListOrdersByCustomer(ctx context.Context, claims *models.Claims, page, size int) ([]models.Order, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	orders, total, err := s.orderRepo.ListOrdersByCustomer(ctx, claims.UserID, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}
