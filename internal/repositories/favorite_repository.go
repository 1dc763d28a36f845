package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/models"
	"github.com/shopcore-labs/shopcore/internal/utils"
)

type FavoriteRepository interface {
	CreateFavorite(ctx context.Context, favorite *models.Favorite) error
	GetFavoriteByID(ctx context.Context, id uuid.UUID) (*models.Favorite, error)
	ListFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, id uuid.UUID) error
}

type favoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepo(db *sql.DB) FavoriteRepository {
	return &favoriteRepository{DB: db}
}

// The (user_id, product_id) unique index backs the one-favorite-per-pair
// rule; a duplicate insert surfaces as a unique violation.
func (r *favoriteRepository) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO favorites (id, user_id, product_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	return r.DB.QueryRowContext(dbCtx, query, favorite.ID, favorite.UserID, favorite.ProductID).
		Scan(&favorite.CreatedAt)
}

func (r *favoriteRepository) GetFavoriteByID(ctx context.Context, id uuid.UUID) (*models.Favorite, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	favorite := &models.Favorite{}

	query := `
		SELECT id, user_id, product_id, created_at
		FROM favorites
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&favorite.ID, &favorite.UserID, &favorite.ProductID, &favorite.CreatedAt)
	if err != nil {
		return nil, err
	}

	return favorite, nil
}

func (r *favoriteRepository) ListFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, product_id, created_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	defer rows.Close()

	var favorites []models.Favorite

	for rows.Next() {
		var favorite models.Favorite

		err := rows.Scan(&favorite.ID, &favorite.UserID, &favorite.ProductID, &favorite.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}

		favorites = append(favorites, favorite)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return favorites, nil
}

func (r *favoriteRepository) DeleteFavorite(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}
