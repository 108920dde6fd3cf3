package handlers

import (
	"net/http"

	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/dto"
	"github.com/giftvote/giftvote_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// pollHandler handles HTTP requests for polls, ballots and results.
type pollHandler struct {
	pollService    portssvc.PollSvcFacade
	resultsService portssvc.ResultsSvcFacade
}

// newPollHandler creates a new pollHandler.
func newPollHandler(ps portssvc.PollSvcFacade, rs portssvc.ResultsSvcFacade) *pollHandler {
	return &pollHandler{
		pollService:    ps,
		resultsService: rs,
	}
}

// registerPollRoutes registers all poll-related routes.
func registerPollRoutes(rg *gin.RouterGroup, pollService portssvc.PollSvcFacade, resultsService portssvc.ResultsSvcFacade) {
	h := newPollHandler(pollService, resultsService)

	polls := rg.Group("/polls")
	{
		polls.POST("", h.createPoll)
		polls.GET("/active", h.listActivePolls)
		polls.GET("/completed", h.listCompletedPolls)
		polls.GET("/:id", h.getPoll)
		polls.GET("/:id/details", h.getPollDetails)
		polls.GET("/:id/results", h.getPollResults)
		polls.GET("/:id/can-vote", h.canVote)
		polls.POST("/:id/ballots", h.castBallot)
		polls.POST("/:id/close", h.closePoll)
		polls.PUT("/:id/end-date", h.updateEndDate)
	}
}

// requireEmployeeID pulls the authenticated employee from the context or
// aborts with 401.
func requireEmployeeID(c *gin.Context) (string, bool) {
	employeeID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return employeeID, ok
}

// createPoll godoc
// @Summary Start a birthday poll
// @Description Starts a surprise gift poll for another employee's birthday.
// @Tags polls
// @Accept json
// @Produce json
// @Param poll body dto.CreatePollRequest true "Poll details"
// @Success 201 {object} dto.PollResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Open poll already exists for this employee this year"
// @Security BearerAuth
// @Router /polls [post]
func (h *pollHandler) createPoll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creatorID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	poll, err := h.pollService.CreatePoll(c.Request.Context(), creatorID, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPollResponse(poll))
}

// castBallot godoc
// @Summary Vote on a poll
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param ballot body dto.CastBallotRequest true "Chosen option"
// @Success 201 {object} dto.BallotResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Poll closed or employee already voted"
// @Security BearerAuth
// @Router /polls/{id}/ballots [post]
func (h *pollHandler) castBallot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	voterID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.CastBallotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ballot, err := h.pollService.CastBallot(c.Request.Context(), c.Param("id"), voterID, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToBallotResponse(ballot))
}

// closePoll godoc
// @Summary Close a poll
// @Description Closes an open poll. Only the employee who started it may close it.
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} dto.PollResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Poll already closed"
// @Security BearerAuth
// @Router /polls/{id}/close [post]
func (h *pollHandler) closePoll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	poll, err := h.pollService.ClosePoll(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPollResponse(poll))
}

// updateEndDate godoc
// @Summary Reschedule an open poll
// @Tags polls
// @Accept json
// @Produce json
// @Param id path string true "Poll ID"
// @Param endDate body dto.UpdatePollEndDateRequest true "New end date"
// @Success 200 {object} dto.PollResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /polls/{id}/end-date [put]
func (h *pollHandler) updateEndDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	var req dto.UpdatePollEndDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	poll, err := h.pollService.UpdatePollEndDate(c.Request.Context(), c.Param("id"), employeeID, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPollResponse(poll))
}

// getPoll godoc
// @Summary Get a poll by ID
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} dto.PollResponse
// @Failure 403 {object} ErrorResponse "Poll hidden from the birthday employee"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /polls/{id} [get]
func (h *pollHandler) getPoll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	poll, err := h.pollService.GetPollByID(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPollResponse(poll))
}

// listActivePolls godoc
// @Summary List open polls
// @Description Lists open polls, excluding any poll about the requesting employee.
// @Tags polls
// @Produce json
// @Success 200 {object} dto.ListPollsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /polls/active [get]
func (h *pollHandler) listActivePolls(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	polls, err := h.pollService.ListActivePolls(c.Request.Context(), employeeID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPollsResponse(polls))
}

// listCompletedPolls godoc
// @Summary List closed polls
// @Tags polls
// @Produce json
// @Success 200 {object} dto.ListPollsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /polls/completed [get]
func (h *pollHandler) listCompletedPolls(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	polls, err := h.pollService.ListCompletedPolls(c.Request.Context(), employeeID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPollsResponse(polls))
}

// canVote godoc
// @Summary Check whether the employee can vote
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /polls/{id}/can-vote [get]
func (h *pollHandler) canVote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	canVote, err := h.pollService.CanCastBallot(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"canVote": canVote})
}

// getPollResults godoc
// @Summary Tally a poll
// @Description Aggregates ballots into per-option counts, the winner and non-voters.
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} dto.TallyResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /polls/{id}/results [get]
func (h *pollHandler) getPollResults(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	tally, err := h.resultsService.Tally(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTallyResponse(tally))
}

// getPollDetails godoc
// @Summary Get the poll detail page for the requesting employee
// @Tags polls
// @Produce json
// @Param id path string true "Poll ID"
// @Success 200 {object} dto.PollDetailsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /polls/{id}/details [get]
func (h *pollHandler) getPollDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := requireEmployeeID(c)
	if !ok {
		return
	}

	details, err := h.resultsService.GetPollDetails(c.Request.Context(), c.Param("id"), employeeID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPollDetailsResponse(details))
}
