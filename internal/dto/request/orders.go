package request

import "cinema-social/internal/data/entity"

type CreateOrderRequest struct {
	UserID     string           `json:"userId" validate:"required,uuid"`
	MovieID    int              `json:"movieId" validate:"required"`
	MovieTitle string           `json:"movieTitle"`
	Seats      []entity.Seat    `json:"seats" validate:"required,min=1"`
	Products   []entity.Product `json:"products"`
	// TicketPrice defaults to 500 when omitted
	TicketPrice float64 `json:"ticketPrice"`
}
