package api

import (
	"net/http"

	reqdto "parking-core/internal/handler/dto/request"
	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/handler/httperr"
	"parking-core/internal/handler/middleware"
	"parking-core/internal/usecase/commands"
	"parking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.AllocationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.AllocationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve a spot
// @Description Claim an available spot in the lot for the current user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lot_id path string true "Lot ID"
// @Param request body reqdto.ReserveRequest true "Reserve request"
// @Success 201 {object} resdto.Envelope{data=resdto.ReserveResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reserve/{lot_id} [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	lotID, ok := pathID(c, "lot_id")
	if !ok {
		return
	}
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(userID, lotID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK("Spot reserved successfully", resdto.FromReserveResult(result)))
}

// @Summary Park in
// @Description Record vehicle arrival; billing starts here
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /parked-in/{reservation_id} [post]
func (h *ReservationHandler) ParkIn(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation_id")
	if !ok {
		return
	}

	r, err := h.cmds.ParkIn(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Parked in successfully", resdto.FromReservation(r)))
}

// @Summary Release
// @Description Release the spot and bill the reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reservation_id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReleaseResponse}
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /release/{reservation_id} [post]
func (h *ReservationHandler) Release(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "reservation_id")
	if !ok {
		return
	}

	actor := commands.Actor{ID: userID, IsAdmin: middleware.IsAdmin(c)}
	result, err := h.cmds.Release(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Spot released successfully", resdto.FromReleaseResult(result)))
}

// @Summary End session
// @Description Release the current user's active reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=resdto.ReleaseResponse}
// @Failure 404 {object} httperr.Response
// @Router /end-session [post]
func (h *ReservationHandler) EndSession(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	result, err := h.cmds.ReleaseActive(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Parking session ended", resdto.FromReleaseResult(result)))
}

// @Summary Active reservation
// @Description The current user's active reservation, or null
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Router /reservations/active [get]
func (h *ReservationHandler) Active(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.q.ActiveForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromReservationView(view)))
}

// @Summary Reservation history
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "active, completed or cancelled"
// @Param sort query string false "created_at, reserved_at or cost"
// @Param page query int false "1-based page"
// @Success 200 {object} resdto.Envelope{data=resdto.PageResponse[resdto.ReservationListResponse]}
// @Failure 400 {object} httperr.Response
// @Router /reservations/history [get]
func (h *ReservationHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var query reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	page, err := h.q.History(c.Request.Context(), userID, query.ToFilter())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromHistoryPage(page)))
}

// @Summary Dashboard
// @Description Active reservation, recent history and totals for the current user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=resdto.DashboardResponse}
// @Router /dashboard [get]
func (h *ReservationHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	d, err := h.q.Dashboard(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromDashboard(d)))
}
