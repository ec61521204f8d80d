package api

import (
	"net/http"

	reqdto "field-booking/internal/handler/dto/request"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	cmds commands.TeamCommands
	q    queries.TeamQueries
}

func NewTeamHandler(cmds commands.TeamCommands, q queries.TeamQueries) *TeamHandler {
	return &TeamHandler{cmds: cmds, q: q}
}

// @Summary Create team
// @Description The creator becomes the team leader
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTeamRequest true "Team"
// @Success 201 {object} resdto.Envelope{data=queries.TeamView}
// @Failure 400 {object} httperr.Response
// @Router /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.cmds.Create(c.Request.Context(), actor, req.Name, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), t.ID())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "team_created_successfully", view)
}

// @Summary Get team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} resdto.Envelope{data=queries.TeamView}
// @Failure 404 {object} httperr.Response
// @Router /teams/{id} [get]
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "team_retrieved_successfully", view)
}

// @Summary Add team member
// @Description Leader or admin adds a registered user
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body reqdto.AddMemberRequest true "Member"
// @Success 201 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.cmds.AddMember(c.Request.Context(), actor, id, req.UserID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "member_added_successfully", nil)
}

// @Summary Leave team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teams/{id}/members/me [delete]
func (h *TeamHandler) Leave(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Leave(c.Request.Context(), actor, id); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "left_team_successfully", nil)
}

// @Summary List teams
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name contains"
// @Param sort_by query string false "name or created_at"
// @Param sort_order query string false "asc or desc, default desc"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.Envelope{data=queries.TeamPage}
// @Failure 400 {object} httperr.Response
// @Router /teams [get]
func (h *TeamHandler) List(c *gin.Context) {
	var q reqdto.ListTeamsQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := h.q.List(c.Request.Context(), q.ToFilter(), q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "teams_retrieved_successfully", page)
}

// @Summary Update team
// @Description Leader or admin renames the team or changes its description
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body reqdto.UpdateTeamRequest true "Changes"
// @Success 200 {object} resdto.Envelope{data=queries.TeamView}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams/{id} [put]
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateTeamRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), actor, id, req.Name, req.Description); err != nil {
		fail(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "team_updated_successfully", view)
}

// @Summary Delete team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 200 {object} resdto.Envelope
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
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
	respond(c, http.StatusOK, "team_deleted_successfully", nil)
}

// @Summary Join team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 201 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /teams/{id}/join [post]
func (h *TeamHandler) Join(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.Join(c.Request.Context(), actor, id); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, "joined_team_successfully", nil)
}

// @Summary Remove team member
// @Description Leader or admin removes anyone but the leader
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param userId path string true "User ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId")
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.cmds.RemoveMember(c.Request.Context(), actor, id, userID); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "member_removed_successfully", nil)
}

// @Summary Team schedule
// @Description Bookings made for the team, visible to its members
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param page query int false "Page"
// @Param per_page query int false "Page size"
// @Success 200 {object} resdto.Envelope{data=queries.TeamSchedule}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /teams/{id}/schedule [get]
func (h *TeamHandler) Schedule(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var q reqdto.PageQuery
	if !bindQuery(c, &q) {
		return
	}
	schedule, err := h.q.Schedule(c.Request.Context(), actor, id, q.ToPage())
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, "team_schedule_retrieved", schedule)
}
