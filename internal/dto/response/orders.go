package response

import (
	"time"

	"cinema-social/internal/data/entity"
)

// OrderSummaryResponse is returned right after checkout.
type OrderSummaryResponse struct {
	OrderID      string    `json:"orderId"`
	TicketTotal  float64   `json:"ticketTotal"`
	ProductTotal float64   `json:"productTotal"`
	Total        float64   `json:"total"`
	SessionDate  time.Time `json:"sessionDate"`
}

// OrderResponse is one row of the order history listing.
// PurchasedProducts is null when no product order is attached.
type OrderResponse struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	MovieID           int              `json:"movie_id"`
	MovieTitle        string           `json:"movie_title"`
	Seats             []entity.Seat    `json:"seats"`
	TotalPrice        float64          `json:"total_price"`
	SessionDate       time.Time        `json:"session_date"`
	CreatedAt         time.Time        `json:"created_at"`
	PurchasedProducts []entity.Product `json:"purchased_products"`
}

func OrderToResponse(order *entity.OrderHistoryItem) OrderResponse {
	return OrderResponse{
		ID:                order.ID.String(),
		UserID:            order.UserID.String(),
		MovieID:           order.MovieID,
		MovieTitle:        order.MovieTitle,
		Seats:             order.Seats,
		TotalPrice:        order.TotalPrice,
		SessionDate:       order.SessionDate,
		CreatedAt:         order.CreatedAt,
		PurchasedProducts: order.PurchasedProducts,
	}
}
