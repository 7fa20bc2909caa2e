package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seat identifies one seat in the hall grid.
type Seat struct {
	Row    int `json:"row"`
	Number int `json:"number"`
}

// Product is one concession item attached to an order.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type TicketOrder struct {
	BaseSimple
	UserID      uuid.UUID `db:"user_id"`
	MovieID     int       `db:"movie_id"`
	MovieTitle  string    `db:"movie_title"`
	Seats       []Seat    `db:"seats"` // stored as jsonb
	TotalPrice  float64   `db:"total_price"`
	SessionDate time.Time `db:"session_date"`
}

type ProductOrder struct {
	BaseSimple
	UserID        uuid.UUID `db:"user_id"`
	TicketOrderID uuid.UUID `db:"ticket_order_id"`
	Products      []Product `db:"products"` // stored as jsonb
	TotalPrice    float64   `db:"total_price"`
}

// OrderHistoryItem is a ticket order left-joined with its optional
// product order. PurchasedProducts is nil when no product order exists.
type OrderHistoryItem struct {
	TicketOrder
	PurchasedProducts []Product `db:"purchased_products"`
}
