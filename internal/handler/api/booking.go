package api

import (
	"net/http"

	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	q        queries.BookingQueries
	payments queries.PaymentQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, payments queries.PaymentQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, payments: payments}
}

// @Summary Create booking
// @Description Request a slot on a field; the booking starts pending
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		fail(c, err)
		return
	}
	b, err := h.cmds.Create(c.Request.Context(), actor, in)
	if err != nil {
		fail(c, err)
		return
	}
	res, err := resdto.FromBooking(b)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "booking_created_successfully", res)
}

// @Summary My bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status"
// @Param date query string false "YYYY-MM-DD"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.Envelope{data=queries.BookingPage}
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if !bindQuery(c, &q) {
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		fail(c, err)
		return
	}
	page, err := h.q.ListMine(c.Request.Context(), actor, filter, q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "bookings_retrieved_successfully", page)
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=queries.BookingView}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
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
	respond(c, http.StatusOK, "booking_retrieved_successfully", view)
}

// @Summary Change booking status
// @Description Requester, field owner or admin moves the booking along its lifecycle
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.cmds.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	res, err := resdto.FromBooking(b)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "booking_updated_successfully", res)
}

// @Summary Delete booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "booking_deleted_successfully", nil)
}

// @Summary Booking payments
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=[]queries.PaymentView}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/payments [get]
func (h *BookingHandler) Payments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	payments, err := h.payments.ListByBooking(c.Request.Context(), actor, id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "payments_retrieved", payments)
}
