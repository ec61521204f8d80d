package api

import (
	"net/http"

	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ClubHandler serves the public directory of field owners.
type ClubHandler struct {
	q queries.ClubQueries
}

func NewClubHandler(q queries.ClubQueries) *ClubHandler {
	return &ClubHandler{q: q}
}

// @Summary Club details
// @Description Owner profile with field stats and registered teams
// @Tags clubs
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {object} resdto.Envelope{data=queries.ClubDetailView}
// @Failure 404 {object} httperr.Response
// @Router /clubs/{ownerId} [get]
func (h *ClubHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "ownerId")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "club_details_retrieved", view)
}

// @Summary Search clubs
// @Tags clubs
// @Produce json
// @Param name query string false "Name contains"
// @Param governorate query string false "Has a field in governorate"
// @Param min_rating query number false "Minimum average rating"
// @Param sort_by query string false "id, name or rating"
// @Param sort_order query string false "asc or desc"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.Envelope{data=queries.ClubPage}
// @Failure 400 {object} httperr.Response
// @Router /clubs/search [get]
func (h *ClubHandler) Search(c *gin.Context) {
	var q reqdto.SearchClubsQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.Search(c.Request.Context(), q.ToFilter(), q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "clubs_search_completed", page)
}

// @Summary Top rated clubs
// @Tags clubs
// @Produce json
// @Param limit query int false "At most 100, default 10"
// @Success 200 {object} resdto.Envelope{data=[]queries.ClubView}
// @Router /clubs/top-rated [get]
func (h *ClubHandler) TopRated(c *gin.Context) {
	var q reqdto.TopRatedClubsQuery
	if !bindQuery(c, &q) {
		return
	}
	clubs, err := h.q.TopRated(c.Request.Context(), q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "top_rated_clubs_retrieved", clubs)
}
