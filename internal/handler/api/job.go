package api

import (
	"net/http"
	"strconv"

	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/handler/httperr"
	"parking-core/internal/handler/middleware"
	"parking-core/internal/infra/jobs"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	enqueuer jobs.Enqueuer
}

func NewJobHandler(enqueuer jobs.Enqueuer) *JobHandler {
	return &JobHandler{enqueuer: enqueuer}
}

// @Summary Job status
// @Description Poll a queued export or report. Users only see jobs they queued.
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} resdto.Envelope{data=resdto.JobResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /jobs/{id} [get]
func (h *JobHandler) Status(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidJobID, "Invalid id", nil)
		return
	}

	status, err := h.enqueuer.JobStatus(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	// Foreign jobs look missing
	if !middleware.IsAdmin(c) && (status.RequestedBy == nil || *status.RequestedBy != userID) {
		httperr.Abort(c, jobs.ErrJobNotFound)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromJobStatus(status)))
}
