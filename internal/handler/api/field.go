package api

import (
	"net/http"

	"field-booking/internal/domain/timeslot"
	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FieldHandler struct {
	cmds     commands.FieldCommands
	q        queries.FieldQueries
	bookings queries.BookingQueries
	reviews  queries.ReviewQueries
}

func NewFieldHandler(cmds commands.FieldCommands, q queries.FieldQueries, bookings queries.BookingQueries, reviews queries.ReviewQueries) *FieldHandler {
	return &FieldHandler{cmds: cmds, q: q, bookings: bookings, reviews: reviews}
}

// @Summary List fields
// @Tags fields
// @Produce json
// @Param governorate query string false "Governorate"
// @Param min_price query number false "Minimum hourly price"
// @Param max_price query number false "Maximum hourly price"
// @Param search query string false "Name, location or description contains"
// @Param page query int false "Page (default 1)"
// @Param per_page query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.Envelope{data=queries.FieldPage}
// @Failure 400 {object} httperr.Response
// @Router /fields [get]
func (h *FieldHandler) List(c *gin.Context) {
	var q reqdto.ListFieldsQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.List(c.Request.Context(), q.ToFilter(), q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "fields_retrieved_successfully", page)
}

// @Summary Create field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFieldRequest true "Field"
// @Success 201 {object} resdto.Envelope{data=resdto.FieldResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /fields [post]
func (h *FieldHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateFieldRequest
	if !bindJSON(c, &req) {
		return
	}
	params, err := req.ToParams()
	if err != nil {
		fail(c, err)
		return
	}
	f, err := h.cmds.Create(c.Request.Context(), actor, params)
	if err != nil {
		fail(c, err)
		return
	}
	res, err := resdto.FromField(f)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "field_created_successfully", res)
}

// @Summary Search available fields
// @Description Fields open and unbooked for the whole window on the date
// @Tags fields
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param start_time query string true "HH:MM"
// @Param end_time query string true "HH:MM"
// @Param governorate query string false "Governorate"
// @Success 200 {object} resdto.Envelope{data=[]queries.FieldView}
// @Failure 400 {object} httperr.Response
// @Router /fields/available [get]
func (h *FieldHandler) Available(c *gin.Context) {
	var q reqdto.AvailableFieldsQuery
	if !bindQuery(c, &q) {
		return
	}
	search, err := q.ToSearch()
	if err != nil {
		fail(c, err)
		return
	}
	fields, err := h.q.SearchAvailable(c.Request.Context(), search, q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "available_fields_retrieved", fields)
}

// @Summary Get field
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.Envelope{data=queries.FieldView}
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [get]
func (h *FieldHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "field_retrieved_successfully", view)
}

// @Summary Update field
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.UpdateFieldRequest true "Changed attributes"
// @Success 200 {object} resdto.Envelope{data=resdto.FieldResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [put]
func (h *FieldHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateFieldRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		fail(c, err)
		return
	}
	f, err := h.cmds.Update(c.Request.Context(), actor, id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	res, err := resdto.FromField(f)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "field_updated_successfully", res)
}

// @Summary Delete field
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id} [delete]
func (h *FieldHandler) Delete(c *gin.Context) {
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
	respond(c, http.StatusOK, "field_deleted_successfully", nil)
}

// @Summary Field availability
// @Description Booked and free slots of a field on one date
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "YYYY-MM-DD"
// @Success 200 {object} resdto.Envelope{data=queries.AvailabilityView}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/availability [get]
func (h *FieldHandler) Availability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if !bindQuery(c, &q) {
		return
	}
	date, err := timeslot.ParseDate(q.Date)
	if err != nil {
		fail(c, err)
		return
	}
	view, err := h.q.Availability(c.Request.Context(), id, date)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "availability_retrieved", view)
}

// @Summary Field bookings
// @Tags fields
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param status query string false "Booking status"
// @Param date query string false "YYYY-MM-DD"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.Envelope{data=queries.BookingPage}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/bookings [get]
func (h *FieldHandler) Bookings(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
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
	page, err := h.bookings.ListByField(c.Request.Context(), actor, id, filter, q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "bookings_retrieved_successfully", page)
}

// @Summary Field reviews
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.Envelope{data=queries.ReviewPage}
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/reviews [get]
func (h *FieldHandler) Reviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.reviews.ListByField(c.Request.Context(), id, q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "reviews_retrieved", page)
}

// @Summary Field facilities
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.Envelope{data=[]string}
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/facilities [get]
func (h *FieldHandler) Facilities(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	names, err := h.q.Facilities(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "facilities_retrieved_successfully", names)
}

// @Summary Replace field facilities
// @Description Owner or admin; an empty list clears the amenities
// @Tags fields
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Field ID"
// @Param request body reqdto.SetFacilitiesRequest true "Facilities"
// @Success 200 {object} resdto.Envelope{data=[]string}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fields/{id}/facilities [put]
func (h *FieldHandler) SetFacilities(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.SetFacilitiesRequest
	if !bindJSON(c, &req) {
		return
	}
	names, err := h.cmds.SetFacilities(c.Request.Context(), actor, id, req.Facilities)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "facilities_updated_successfully", names)
}
