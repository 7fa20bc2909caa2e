package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"cinema-social/internal/data/entity"
	"cinema-social/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateWithProducts inserts the ticket order and, when productOrder
	// is non-nil, the linked product order inside one transaction.
	CreateWithProducts(ctx context.Context, ticketOrder *entity.TicketOrder, productOrder *entity.ProductOrder) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderHistoryItem, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (or *orderRepository) CreateWithProducts(ctx context.Context, ticketOrder *entity.TicketOrder, productOrder *entity.ProductOrder) error {
	seatsJSON, err := json.Marshal(ticketOrder.Seats)
	if err != nil {
		return fmt.Errorf("marshal seats: %w", err)
	}

	tx, err := or.db.Begin(ctx)
	if err != nil {
		or.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	// No-op after a successful commit
	defer tx.Rollback(ctx)

	ticketQuery := `
		INSERT INTO ticket_orders (id, user_id, movie_id, movie_title, seats, total_price, session_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, ticketQuery,
		ticketOrder.ID,
		ticketOrder.UserID,
		ticketOrder.MovieID,
		ticketOrder.MovieTitle,
		seatsJSON,
		ticketOrder.TotalPrice,
		ticketOrder.SessionDate,
		ticketOrder.CreatedAt,
	)

	if err != nil {
		or.log.Error("Failed to create ticket order",
			zap.Error(err),
			zap.String("user_id", ticketOrder.UserID.String()),
			zap.Int("movie_id", ticketOrder.MovieID),
		)
		return fmt.Errorf("create ticket order %s: %w", ticketOrder.ID.String(), err)
	}

	if productOrder != nil {
		productsJSON, err := json.Marshal(productOrder.Products)
		if err != nil {
			return fmt.Errorf("marshal products: %w", err)
		}

		productQuery := `
			INSERT INTO product_orders (id, user_id, ticket_order_id, products, total_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`

		_, err = tx.Exec(ctx, productQuery,
			productOrder.ID,
			productOrder.UserID,
			productOrder.TicketOrderID,
			productsJSON,
			productOrder.TotalPrice,
			productOrder.CreatedAt,
		)

		if err != nil {
			or.log.Error("Failed to create product order",
				zap.Error(err),
				zap.String("ticket_order_id", productOrder.TicketOrderID.String()),
			)
			return fmt.Errorf("create product order for ticket order %s: %w",
				productOrder.TicketOrderID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		or.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.String("ticket_order_id", ticketOrder.ID.String()),
		)
		return fmt.Errorf("commit order transaction %s: %w", ticketOrder.ID.String(), err)
	}

	return nil
}

// FindByUserID left-joins ticket orders to their optional product order,
// newest first. Orders without products carry a nil products column.
func (or *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderHistoryItem, error) {
	query := `
		SELECT t.id, t.user_id, t.movie_id, t.movie_title, t.seats, t.total_price,
		       t.session_date, t.created_at, p.products AS purchased_products
		FROM ticket_orders t
		LEFT JOIN product_orders p ON t.id = p.ticket_order_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC
	`

	rows, err := or.db.Query(ctx, query, userID)
	if err != nil {
		or.log.Error("Failed to find orders",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders of user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var orders []*entity.OrderHistoryItem
	for rows.Next() {
		var (
			order        entity.OrderHistoryItem
			seatsJSON    []byte
			productsJSON []byte
		)

		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.MovieID,
			&order.MovieTitle,
			&seatsJSON,
			&order.TotalPrice,
			&order.SessionDate,
			&order.CreatedAt,
			&productsJSON,
		)
		if err != nil {
			or.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}

		if err := json.Unmarshal(seatsJSON, &order.Seats); err != nil {
			return nil, fmt.Errorf("unmarshal seats of order %s: %w", order.ID.String(), err)
		}

		// NULL column means no product order was attached
		if productsJSON != nil {
			if err := json.Unmarshal(productsJSON, &order.PurchasedProducts); err != nil {
				return nil, fmt.Errorf("unmarshal products of order %s: %w", order.ID.String(), err)
			}
		}

		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}
