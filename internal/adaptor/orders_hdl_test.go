package adaptor

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-social/internal/dto/response"
	"cinema-social/internal/usecase"
	"cinema-social/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrdersHandlerMethodNotAllowed(t *testing.T) {
	// Orders answers 405 for unsupported methods, unlike auth/friends 404
	handler := NewOrdersHandler(&fakeOrdersService{}, zap.NewNop())

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/orders", nil)
			rec := httptest.NewRecorder()
			handler.Handle(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.JSONEq(t, `{"error":"`+usecase.MsgMethodNotAllowed+`"}`, rec.Body.String())
		})
	}
}

func TestOrdersHandlerCreate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeOrdersService{
			createResp: &response.OrderSummaryResponse{
				OrderID:      "o-1",
				TicketTotal:  1000,
				ProductTotal: 300,
				Total:        1300,
			},
		}
		handler := NewOrdersHandler(svc, zap.NewNop())

		body := strings.NewReader(`{"userId":"b4b2ef07-0c5e-4b4e-9f1a-111111111111","movieId":7,"movieTitle":"Ёлки","seats":[{"row":1,"number":5}]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/orders", body)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"orderId":"o-1"`)
		assert.Contains(t, rec.Body.String(), `"total":1300`)
	})

	t.Run("validation error from service", func(t *testing.T) {
		svc := &fakeOrdersService{
			createErr: utils.ValidationError(usecase.MsgFillAllFields),
		}
		handler := NewOrdersHandler(svc, zap.NewNop())

		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"`+usecase.MsgFillAllFields+`"}`, rec.Body.String())
	})
}

func TestOrdersHandlerList(t *testing.T) {
	svc := &fakeOrdersService{listResp: []response.OrderResponse{}}
	handler := NewOrdersHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/orders?userId=u-1", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	assert.Equal(t, "u-1", svc.listUserID)
}
