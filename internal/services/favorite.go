package service

import (
	"context"
	"database/sql"
	goerrors "errors"

	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/authz"
	"github.com/shopcore-labs/shopcore/internal/errors"
	"github.com/shopcore-labs/shopcore/internal/models"
	repository "github.com/shopcore-labs/shopcore/internal/repositories"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, claims *models.Claims, req *models.AddFavoriteRequest) (*models.Favorite, error)
	ListFavorites(ctx context.Context, claims *models.Claims) ([]models.Favorite, error)
	RemoveFavorite(ctx context.Context, claims *models.Claims, id uuid.UUID) error
}

type favoriteService struct {
	repo        repository.FavoriteRepository
	productRepo repository.ProductRepository
	guard       *authz.Guard
}

func NewFavoriteService(repo repository.FavoriteRepository, productRepo repository.ProductRepository, guard *authz.Guard) FavoriteService {
	return &favoriteService{
		repo:        repo,
		productRepo: productRepo,
		guard:       guard,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, claims *models.Claims, req *models.AddFavoriteRequest) (*models.Favorite, error) {

	if _, err := s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	favorite := &models.Favorite{
		ID:        uuid.New(),
		UserID:    claims.UserID,
		ProductID: req.ProductID,
	}

	if err := s.repo.CreateFavorite(ctx, favorite); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Product already in favorites").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to add favorite").WithError(err)
	}

	return favorite, nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, claims *models.Claims) ([]models.Favorite, error) {

	favorites, err := s.repo.ListFavoritesByUser(ctx, claims.UserID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch favorites").WithError(err)
	}

	return favorites, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, claims *models.Claims, id uuid.UUID) error {

	favorite, err := s.repo.GetFavoriteByID(ctx, id)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Favorite not found").WithError(err)
		}
		return errors.DatabaseError("Failed to load favorite").WithError(err)
	}

	if decision := s.guard.RequireOwnerOrAdmin(claims, favorite.UserID); !decision.Allowed {
		return errors.ForbiddenError("You don't have permission to remove this favorite").WithDetail(decision.Reason)
	}

	if err := s.repo.DeleteFavorite(ctx, id); err != nil {
		return errors.DatabaseError("Failed to remove favorite").WithError(err)
	}

	return nil
}
