//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"field-booking/internal/domain/access"
	"field-booking/internal/domain/payment"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/api"
	resdto "field-booking/internal/handler/dto/response"
	commandsmock "field-booking/internal/mock/commands"
	queriesmock "field-booking/internal/mock/queries"
	"field-booking/internal/testing/httptest"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	bookingID := uuid.New()
	paymentID := uuid.New()
	actor := actorWith(user.RoleUser)

	tests := []struct {
		name       string
		method     string
		url        string
		body       any
		setupMock  func(c *commandsmock.MockPaymentCommands, q *queriesmock.MockPaymentQueries)
		wantStatus int
		wantReason string
	}{
		{
			name:   "pay for booking",
			method: http.MethodPost,
			url:    "/payments",
			body:   map[string]any{"booking_id": bookingID, "payment_method": "wallet"},
			setupMock: func(c *commandsmock.MockPaymentCommands, _ *queriesmock.MockPaymentQueries) {
				p := payment.New(bookingID, actor.ID, decimal.NewFromInt(150), "EGP", payment.MethodWallet, now)
				c.EXPECT().Create(gomock.Any(), *actor, bookingID, "wallet").Return(p, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "booking id required",
			method:     http.MethodPost,
			url:        "/payments",
			body:       map[string]any{"payment_method": "cash"},
			setupMock:  func(*commandsmock.MockPaymentCommands, *queriesmock.MockPaymentQueries) {},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalid_request",
		},
		{
			name:   "already paid",
			method: http.MethodPost,
			url:    "/payments",
			body:   map[string]any{"booking_id": bookingID, "payment_method": "cash"},
			setupMock: func(c *commandsmock.MockPaymentCommands, _ *queriesmock.MockPaymentQueries) {
				c.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, payment.ErrAlreadyCompleted)
			},
			wantStatus: http.StatusConflict,
			wantReason: "payment_already_completed",
		},
		{
			name:   "status change by non-admin",
			method: http.MethodPut,
			url:    "/payments/" + paymentID.String() + "/status",
			body:   map[string]any{"status": "completed"},
			setupMock: func(c *commandsmock.MockPaymentCommands, _ *queriesmock.MockPaymentQueries) {
				c.EXPECT().UpdateStatus(gomock.Any(), *actor, paymentID, "completed").Return(nil, access.ErrForbidden)
			},
			wantStatus: http.StatusForbidden,
			wantReason: "unauthorized",
		},
		{
			name:   "refund pending payment",
			method: http.MethodPost,
			url:    "/payments/" + paymentID.String() + "/refund",
			setupMock: func(c *commandsmock.MockPaymentCommands, _ *queriesmock.MockPaymentQueries) {
				c.EXPECT().Refund(gomock.Any(), *actor, paymentID).Return(nil, payment.ErrNotRefundable)
			},
			wantStatus: http.StatusConflict,
			wantReason: "payment_not_refundable",
		},
		{
			name:   "unknown payment",
			method: http.MethodGet,
			url:    "/payments/" + paymentID.String(),
			setupMock: func(_ *commandsmock.MockPaymentCommands, q *queriesmock.MockPaymentQueries) {
				q.EXPECT().Get(gomock.Any(), *actor, paymentID).Return(nil, payment.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantReason: "payment_not_found",
		},
		{
			name:   "list my payments",
			method: http.MethodGet,
			url:    "/payments?page=2&per_page=5",
			setupMock: func(_ *commandsmock.MockPaymentCommands, q *queriesmock.MockPaymentQueries) {
				q.EXPECT().ListMine(gomock.Any(), *actor, queries.PageRequest{Page: 2, PerPage: 5}).
					Return(&queries.PaymentPage{Payments: []*queries.PaymentView{}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "list rejects oversized pages",
			method:     http.MethodGet,
			url:        "/payments?per_page=500",
			setupMock:  func(*commandsmock.MockPaymentCommands, *queriesmock.MockPaymentQueries) {},
			wantStatus: http.StatusBadRequest,
			wantReason: "invalid_request",
		},
		{
			name:   "methods",
			method: http.MethodGet,
			url:    "/payments/methods",
			setupMock: func(_ *commandsmock.MockPaymentCommands, q *queriesmock.MockPaymentQueries) {
				q.EXPECT().Methods().Return([]payment.Method{payment.MethodCash, payment.MethodCreditCard})
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cmds := commandsmock.NewMockPaymentCommands(ctrl)
			q := queriesmock.NewMockPaymentQueries(ctrl)
			tc.setupMock(cmds, q)

			h := api.NewPaymentHandler(cmds, q)
			router := newEngine(actor)
			router.POST("/payments", h.Create)
			router.GET("/payments", h.List)
			router.GET("/payments/methods", h.Methods)
			router.GET("/payments/:id", h.Get)
			router.PUT("/payments/:id/status", h.UpdateStatus)
			router.POST("/payments/:id/refund", h.Refund)

			w := httptest.PerformRequest(t, router, tc.method, tc.url, tc.body, httptest.WithBearer(testToken))

			if tc.wantReason != "" {
				httptest.AssertErrorResponse(t, w, tc.wantStatus, tc.wantReason)
				return
			}
			require.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			if tc.method == http.MethodPost {
				var res resdto.PaymentResponse
				httptest.AssertSuccessResponse(t, w, tc.wantStatus, &res)
				assert.Equal(t, "wallet", res.Method)
				assert.Equal(t, "pending", res.Status)
				assert.Equal(t, "EGP", res.Currency)
				assert.NotEmpty(t, res.TransactionID)
			}
		})
	}
}
