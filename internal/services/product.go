package service

import (
	"context"
	"database/sql"
	goerrors "errors"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopcore-labs/shopcore/internal/authz"
	"github.com/shopcore-labs/shopcore/internal/errors"
	"github.com/shopcore-labs/shopcore/internal/models"
	repository "github.com/shopcore-labs/shopcore/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, claims *models.Claims, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, claims *models.Claims, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, claims *models.Claims, id int64) error
	Restock(ctx context.Context, claims *models.Claims, id int64, quantity int64) (*models.Product, error)
	ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error)
}

type productService struct {
	repo      repository.ProductRepository
	guard     *authz.Guard
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, guard *authz.Guard) ProductService {
	return &productService{
		repo:      repo,
		guard:     guard,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *productService) CreateProduct(ctx context.Context, claims *models.Claims, req *models.CreateProductRequest) (*models.Product, error) {

	if decision := s.guard.RequireRole(claims, models.RoleAdmin); !decision.Allowed {
		return nil, errors.ForbiddenError("Only administrators can manage the catalog").WithDetail(decision.Reason)
	}

	if !req.Price.IsPositive() {
		return nil, errors.AddValidationError("price", "must be greater than zero")
	}

	product := &models.Product{
		Name:          s.sanitizer.Sanitize(req.Name),
		Description:   s.sanitizer.Sanitize(req.Description),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Active:        true,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, claims *models.Claims, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	if decision := s.guard.RequireRole(claims, models.RoleAdmin); !decision.Allowed {
		return nil, errors.ForbiddenError("Only administrators can manage the catalog").WithDetail(decision.Reason)
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.Name != nil {
		product.Name = s.sanitizer.Sanitize(*req.Name)
	}

	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}

	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, errors.AddValidationError("price", "must be greater than zero")
		}
		product.Price = *req.Price
	}

	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, claims *models.Claims, id int64) error {

	if decision := s.guard.RequireRole(claims, models.RoleAdmin); !decision.Allowed {
		return errors.ForbiddenError("Only administrators can manage the catalog").WithDetail(decision.Reason)
	}

	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Product not found").WithError(err)
		}
		if repository.IsForeignKeyViolation(err) {
			return errors.ConflictError("Product is referenced by existing orders").WithError(err)
		}
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	return nil
}

// Restock is the symmetric path to the checkout decrement; the database
// row serializes both.
func (s *productService) Restock(ctx context.Context, claims *models.Claims, id int64, quantity int64) (*models.Product, error) {

	if decision := s.guard.RequireRole(claims, models.RoleAdmin); !decision.Allowed {
		return nil, errors.ForbiddenError("Only administrators can manage the catalog").WithDetail(decision.Reason)
	}

	product, err := s.repo.Restock(ctx, id, quantity)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to restock product").WithError(err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > 100 {
		size = 10
	}

	products, total, err := s.repo.ListProducts(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}
