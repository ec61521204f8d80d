package api

import (
	"net/http"

	"field-booking/internal/domain/payment"
	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
	q    queries.PaymentQueries
}

func NewPaymentHandler(cmds commands.PaymentCommands, q queries.PaymentQueries) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q}
}

// @Summary Pay for a booking
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequest true "Payment"
// @Success 201 {object} resdto.Envelope{data=resdto.PaymentResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.Create(c.Request.Context(), actor, req.BookingID, req.PaymentMethod)
	h.render(c, http.StatusCreated, "payment_created_successfully", p, err)
}

// @Summary Payment methods
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.PaymentMethodResponse}
// @Router /payments/methods [get]
func (h *PaymentHandler) Methods(c *gin.Context) {
	respond(c, http.StatusOK, "payment_methods_retrieved", resdto.FromPaymentMethods(h.q.Methods()))
}

// @Summary List my payments
// @Description Payments made by the caller, newest first
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.Envelope{data=queries.PaymentPage}
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.ListMine(c.Request.Context(), actor, q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "payments_retrieved", page)
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.Envelope{data=queries.PaymentView}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), actor, id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "payment_retrieved_successfully", view)
}

// @Summary Set payment status
// @Description Admin only
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "Target status"
// @Success 200 {object} resdto.Envelope{data=resdto.PaymentResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdatePaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	h.render(c, http.StatusOK, "payment_updated_successfully", p, err)
}

// @Summary Refund payment
// @Description Field owner or admin refunds a completed payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.Envelope{data=resdto.PaymentResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	p, err := h.cmds.Refund(c.Request.Context(), actor, id)
	h.render(c, http.StatusOK, "payment_refunded_successfully", p, err)
}

func (h *PaymentHandler) render(c *gin.Context, status int, key string, p *payment.Payment, err error) {
	if err != nil {
		fail(c, err)
		return
	}
	res, err := resdto.FromPayment(p)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, status, key, res)
}
