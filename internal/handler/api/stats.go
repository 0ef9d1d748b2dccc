package api

import (
	"errors"
	"net/http"
	"time"

	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/handler/httperr"
	"parking-core/internal/infra/jobs"
	"parking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	q        queries.StatsQueries
	enqueuer jobs.Enqueuer
}

func NewStatsHandler(q queries.StatsQueries, enqueuer jobs.Enqueuer) *StatsHandler {
	return &StatsHandler{q: q, enqueuer: enqueuer}
}

// @Summary Admin overview
// @Description Lot, spot, reservation and revenue totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=queries.OverviewStats}
// @Router /admin/stats [get]
func (h *StatsHandler) Overview(c *gin.Context) {
	stats, err := h.q.Overview(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", stats))
}

// @Summary Admin analytics
// @Description Per-lot revenue and monthly reservation counts for the last 12 months
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=queries.Analytics}
// @Router /admin/analytics [get]
func (h *StatsHandler) Analytics(c *gin.Context) {
	analytics, err := h.q.Analytics(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", analytics))
}

// @Summary Revenue
// @Description Sum of costs released in [from, to)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string true "RFC3339"
// @Param to query string true "RFC3339"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /admin/revenue [get]
func (h *StatsHandler) Revenue(c *gin.Context) {
	from, errFrom := time.Parse(time.RFC3339, c.Query("from"))
	to, errTo := time.Parse(time.RFC3339, c.Query("to"))
	if err := errors.Join(errFrom, errTo); err != nil {
		httperr.BadRequest(c, err, "Invalid date range")
		return
	}
	revenue, err := h.q.Revenue(c.Request.Context(), from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", gin.H{"from": from, "to": to, "revenue": revenue.StringFixed(2)}))
}

// @Summary Monthly report
// @Description Queue the previous month's report now
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 202 {object} resdto.Envelope{data=resdto.JobQueuedResponse}
// @Router /admin/reports/monthly [post]
func (h *StatsHandler) MonthlyReport(c *gin.Context) {
	queued, err := h.enqueuer.EnqueueMonthlyReport(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.OK("Monthly report queued", &resdto.JobQueuedResponse{
		JobID:     queued.JobID,
		StatusURL: resdto.JobStatusURL(queued.JobID),
	}))
}
