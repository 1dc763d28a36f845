package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Cart items are keyed by product id, so a cart can never hold two rows
// for the same product. UserID is null for guest carts, which are keyed
// purely by the cart id. Version guards concurrent item writes.
type Cart struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.NullUUID       `json:"user_id"`
	Items     map[string]CartItem `json:"items"`
	Version   int64               `json:"-"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}

	return total
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity"   validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int64 `json:"quantity"   validate:"min=0"`
}

type CartResponse struct {
	Cart  *Cart           `json:"cart"`
	Total decimal.Decimal `json:"total"`
}
