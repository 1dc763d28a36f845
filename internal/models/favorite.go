package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorites carry a surrogate key assigned at creation; the
// (user, product) pair is unique but never used as identity.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddFavoriteRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
}
