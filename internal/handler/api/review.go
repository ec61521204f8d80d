package api

import (
	"net/http"

	reqdto "field-booking/internal/handler/dto/request"
	resdto "field-booking/internal/handler/dto/response"
	"field-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Create review
// @Description One review per user and field; the field owner is notified
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review"
// @Success 201 {object} resdto.Envelope{data=resdto.ReviewResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		fail(c, err)
		return
	}
	res, err := resdto.FromReview(r)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "review_created_successfully", res)
}

// @Summary Update review
// @Description Author or admin changes the rating or comment
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Changes"
// @Success 200 {object} resdto.Envelope{data=resdto.ReviewResponse}
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	r, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToInput())
	if err != nil {
		fail(c, err)
		return
	}
	res, err := resdto.FromReview(r)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "review_updated_successfully", res)
}

// @Summary Delete review
// @Description Author or admin
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
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
	respond(c, http.StatusOK, "review_deleted_successfully", nil)
}
