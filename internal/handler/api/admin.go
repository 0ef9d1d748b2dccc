package api

import (
	"net/http"

	reqdto "parking-core/internal/handler/dto/request"
	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/handler/httperr"
	"parking-core/internal/usecase/commands"
	"parking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	lotCmds      commands.LotCommands
	allocation   commands.AllocationCommands
	authCmds     commands.AuthCommands
	lots         queries.LotQueries
	reservations queries.ReservationQueries
	users        queries.UserQueries
}

func NewAdminHandler(
	lotCmds commands.LotCommands,
	allocation commands.AllocationCommands,
	authCmds commands.AuthCommands,
	lots queries.LotQueries,
	reservations queries.ReservationQueries,
	users queries.UserQueries,
) *AdminHandler {
	return &AdminHandler{
		lotCmds:      lotCmds,
		allocation:   allocation,
		authCmds:     authCmds,
		lots:         lots,
		reservations: reservations,
		users:        users,
	}
}

// @Summary Create parking lot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LotRequest true "Lot"
// @Success 201 {object} resdto.Envelope{data=resdto.CreateLotResponse}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/lots [post]
func (h *AdminHandler) CreateLot(c *gin.Context) {
	var req reqdto.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	result, err := h.lotCmds.CreateLot(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK("Parking lot created successfully", resdto.FromCreateLot(result.Lot, result.Spots)))
}

// @Summary Update parking lot
// @Description Edit lot fields and grow or shrink its spots
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.LotRequest true "Lot"
// @Success 200 {object} resdto.Envelope{data=resdto.LotResponse}
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/lots/{id} [put]
func (h *AdminHandler) UpdateLot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if _, err := h.lotCmds.UpdateLot(c.Request.Context(), id, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.lots.GetLot(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Parking lot updated successfully", resdto.FromLotView(view)))
}

// @Summary Delete parking lot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/lots/{id} [delete]
func (h *AdminHandler) DeleteLot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.lotCmds.DeleteLot(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Parking lot deleted successfully", nil))
}

// @Summary Add spot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.AddSpotRequest false "Explicit spot number"
// @Success 201 {object} resdto.Envelope{data=resdto.SpotResponse}
// @Failure 409 {object} httperr.Response
// @Router /admin/lots/{id}/spots [post]
func (h *AdminHandler) AddSpot(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AddSpotRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request format")
			return
		}
	}
	s, err := h.lotCmds.AddSpot(c.Request.Context(), lotID, req.SpotNumber)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.OK("Spot added successfully", resdto.FromSpot(s)))
}

// @Summary Remove spots
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Param request body reqdto.RemoveSpotsRequest true "Spot IDs"
// @Success 200 {object} resdto.Envelope
// @Failure 409 {object} httperr.Response
// @Router /admin/lots/{id}/spots [delete]
func (h *AdminHandler) RemoveSpots(c *gin.Context) {
	lotID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RemoveSpotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	removed, err := h.lotCmds.RemoveSpots(c.Request.Context(), lotID, req.SpotIDs)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Spots removed successfully", gin.H{"removed": removed}))
}

// @Summary Delete spot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/parking-spots/{id} [delete]
func (h *AdminHandler) DeleteSpot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.lotCmds.DeleteSpot(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Spot deleted successfully", nil))
}

// @Summary Spot reservation
// @Description The active reservation on a spot, or null
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Router /admin/parking-spots/{id}/reservation [get]
func (h *AdminHandler) SpotReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.reservations.ActiveForSpot(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromReservationView(view)))
}

// @Summary Override spot status
// @Description Force a spot available or occupied. Forcing available cancels its active reservation.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.OverrideStatusRequest true "Status"
// @Success 200 {object} resdto.Envelope{data=resdto.OverrideResponse}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/parking-spots/{id}/override-status [post]
func (h *AdminHandler) OverrideStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	result, err := h.allocation.OverrideStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Spot status updated", resdto.FromOverrideResult(result)))
}

// @Summary List bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param lot_id query string false "Lot ID"
// @Param user_id query string false "User ID"
// @Param spot_id query string false "Spot ID"
// @Param status query string false "Status"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD, inclusive"
// @Param page query int false "1-based page"
// @Success 200 {object} resdto.Envelope{data=resdto.PageResponse[resdto.ReservationResponse]}
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	var query reqdto.BookingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}
	page, err := h.reservations.ListBookings(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromReservationPage(page)))
}

// @Summary Cancel booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.Envelope{data=resdto.ReservationResponse}
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/cancel [post]
func (h *AdminHandler) CancelBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.allocation.AdminCancel(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("Booking cancelled", resdto.FromReservation(r)))
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page"
// @Success 200 {object} resdto.Envelope{data=resdto.PageResponse[resdto.AdminUserResponse]}
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query struct {
		Page int `form:"page" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}
	page, err := h.users.ListUsers(c.Request.Context(), query.Page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromUserPage(page)))
}

// @Summary Toggle user status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.Envelope{data=resdto.UserResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/toggle-status [post]
func (h *AdminHandler) ToggleUserStatus(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	u, err := h.authCmds.ToggleUserActive(c.Request.Context(), actorID, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	msg := "User deactivated"
	if u.IsActive() {
		msg = "User activated"
	}
	c.JSON(http.StatusOK, resdto.OK(msg, resdto.FromUser(u)))
}
