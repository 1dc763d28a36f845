package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/models"
	"github.com/shopcore-labs/shopcore/internal/utils"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	ConvertCart(ctx context.Context, cartID uuid.UUID, actingUserID uuid.UUID) (*models.Order, error)
	GetOrderById(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// ConvertCart runs the whole checkout as one transaction under
// pessimistic row locks.
//
// The cart row is locked first, so a second conversion of the same cart
// blocks here and then finds it empty. Product rows are locked in
// ascending id order; two conversions sharing products always acquire
// those locks in the same order, so they serialize instead of
// deadlocking. Any failure rolls everything back: no stock moves, no
// order row, cart untouched.
func (r *orderRepository) ConvertCart(ctx context.Context, cartID uuid.UUID, actingUserID uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	var (
		ownerID   uuid.NullUUID
		itemsJSON []byte
		version   int64
	)

	err = tx.QueryRowContext(dbCtx, `
		SELECT user_id, items, version
		FROM carts
		WHERE id = $1
		FOR UPDATE
	`, cartID).Scan(&ownerID, &itemsJSON, &version)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock cart: %w", err)
	}

	var items map[string]models.CartItem
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart items: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	ordered := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		ordered = append(ordered, item)
	}

	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ProductID < ordered[j].ProductID })

	// Check every item before touching any stock: all-or-nothing, not
	// best-effort partial checkout.
	for _, item := range ordered {
		var stock int64

		err := tx.QueryRowContext(dbCtx, `
			SELECT stock_quantity
			FROM products
			WHERE id = $1
			FOR UPDATE
		`, item.ProductID).Scan(&stock)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil, &MissingProductError{ProductID: item.ProductID}
			}
			return nil, fmt.Errorf("failed to lock product %d: %w", item.ProductID, err)
		}

		if item.Quantity > stock {
			return nil, &InsufficientStockError{
				ProductID: item.ProductID,
				Requested: item.Quantity,
				Available: stock,
			}
		}
	}

	for _, item := range ordered {
		_, err := tx.ExecContext(dbCtx, `
			UPDATE products SET stock_quantity = stock_quantity - $1, updated_at = NOW()
			WHERE id = $2
		`, item.Quantity, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock for product %d: %w", item.ProductID, err)
		}
	}

	customerID := actingUserID
	if ownerID.Valid {
		customerID = ownerID.UUID
	}

	order := &models.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
	}

	total := decimal.Zero
	for _, item := range ordered {
		total = total.Add(item.LineTotal())

		order.Items = append(order.Items, models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			CreatedAt: time.Now(),
		})
	}
	order.TotalAmount = total

	err = tx.QueryRowContext(dbCtx, `
		INSERT INTO orders (id, customer_id, total_amount, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`, order.ID, order.CustomerID, order.TotalAmount).Scan(&order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err := tx.ExecContext(dbCtx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
		`, item.ID, order.ID, item.ProductID, item.Quantity, item.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("failed to insert an order item: %w", err)
		}
	}

	// Cart is cleared, not deleted; it is reused for the next purchase.
	_, err = tx.ExecContext(dbCtx, `
		UPDATE carts SET items = '{}', version = version + 1, updated_at = NOW()
		WHERE id = $1
	`, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit conversion: %w", err)
	}

	return order, nil
}

func (r *orderRepository) GetOrderById(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order := &models.Order{
		ID: id,
	}

	query := `
		SELECT customer_id, total_amount, created_at
		FROM orders
		WHERE id = $1
	`

	err := r.DB.QueryRowContext(dbCtx, query, id).
		Scan(&order.CustomerID, &order.TotalAmount, &order.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get the order: %w", err)
	}

	items, err := r.orderItems(dbCtx, id)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return order, nil
}

func (r *orderRepository) orderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {

	query := `
		SELECT id, product_id, quantity, unit_price, created_at
		FROM order_items
		WHERE order_id = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get the order items: %w", err)
	}

	defer rows.Close()

	var items []models.OrderItem

	for rows.Next() {
		var item models.OrderItem

		err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		item.OrderID = orderID

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *orderRepository) ListOrdersByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM orders WHERE customer_id = $1`

	err := r.DB.QueryRowContext(dbCtx, countQuery, customerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Offset
	offset := (page - 1) * size

	query := `
		SELECT id, total_amount, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	defer rows.Close()

	var orders []models.Order

	for rows.Next() {
		var order models.Order

		order.CustomerID = customerID

		err := rows.Scan(&order.ID, &order.TotalAmount, &order.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the orders: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		items, err := r.orderItems(dbCtx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}

		orders[i].Items = items
	}

	return orders, total, nil
}
