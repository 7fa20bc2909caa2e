package usecase

import (
	"context"
	"time"

	"cinema-social/internal/data/entity"
	"cinema-social/internal/data/repository"
	"cinema-social/internal/dto/request"
	"cinema-social/internal/dto/response"
	"cinema-social/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultTicketPrice applies when the request carries no ticketPrice
	DefaultTicketPrice = 500

	// sessionOffset is the fixed delay between checkout and the session.
	// Not user-selectable; any client-supplied showtime is ignored.
	sessionOffset = 30 * 24 * time.Hour
)

type OrdersService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderSummaryResponse, error)
	ListOrders(ctx context.Context, userID string) ([]response.OrderResponse, error)
}

type ordersService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrdersService(repo *repository.Repository, log *zap.Logger) OrdersService {
	return &ordersService{
		repo: repo,
		log:  log.With(zap.String("service", "orders")),
	}
}

func (s *ordersService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderSummaryResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ValidationError(MsgFillAllFields)
	}

	ticketPrice := req.TicketPrice
	if ticketPrice == 0 {
		ticketPrice = DefaultTicketPrice
	}

	// 2. Derived pricing and session date
	now := time.Now()
	ticketTotal := float64(len(req.Seats)) * ticketPrice
	sessionDate := now.Add(sessionOffset)

	ticketOrder := &entity.TicketOrder{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:      userID,
		MovieID:     req.MovieID,
		MovieTitle:  req.MovieTitle,
		Seats:       req.Seats,
		TotalPrice:  ticketTotal,
		SessionDate: sessionDate,
	}

	// 3. Optional product order, only when products were selected
	var (
		productOrder *entity.ProductOrder
		productTotal float64
	)
	if len(req.Products) > 0 {
		for _, product := range req.Products {
			productTotal += product.Price
		}

		productOrder = &entity.ProductOrder{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			UserID:        userID,
			TicketOrderID: ticketOrder.ID,
			Products:      req.Products,
			TotalPrice:    productTotal,
		}
	}

	// 4. Both inserts commit or roll back together
	if err := s.repo.Order.CreateWithProducts(ctx, ticketOrder, productOrder); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.String("user_id", req.UserID))
		return nil, utils.InternalError(err)
	}

	s.log.Info("Order created",
		zap.String("order_id", ticketOrder.ID.String()),
		zap.String("user_id", req.UserID),
		zap.Int("seats", len(req.Seats)),
		zap.Float64("total", ticketTotal+productTotal))

	return &response.OrderSummaryResponse{
		OrderID:      ticketOrder.ID.String(),
		TicketTotal:  ticketTotal,
		ProductTotal: productTotal,
		Total:        ticketTotal + productTotal,
		SessionDate:  sessionDate,
	}, nil
}

func (s *ordersService) ListOrders(ctx context.Context, userID string) ([]response.OrderResponse, error) {
	if userID == "" {
		return nil, utils.ValidationError(MsgUserIDRequired)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ValidationError(MsgUserIDRequired)
	}

	found, err := s.repo.Order.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("user_id", userID))
		return nil, utils.InternalError(err)
	}

	orders := make([]response.OrderResponse, 0, len(found))
	for _, order := range found {
		orders = append(orders, response.OrderToResponse(order))
	}

	return orders, nil
}
