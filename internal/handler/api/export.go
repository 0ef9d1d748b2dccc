package api

import (
	"errors"
	"net/http"
	"os"

	reqdto "parking-core/internal/handler/dto/request"
	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/handler/httperr"
	"parking-core/internal/handler/middleware"
	"parking-core/internal/infra/jobs"
	"parking-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

var errForeignExport = errors.New("export belongs to another user")

type ExportHandler struct {
	enqueuer jobs.Enqueuer
	dir      string
}

func NewExportHandler(enqueuer jobs.Enqueuer, cfg config.Config) *ExportHandler {
	return &ExportHandler{enqueuer: enqueuer, dir: cfg.Jobs.ExportDir}
}

// @Summary Export my reservations
// @Description Queue a CSV export of the current user's reservation history
// @Tags exports
// @Produce json
// @Security BearerAuth
// @Success 202 {object} resdto.Envelope{data=resdto.ExportResponse}
// @Router /reservations/export [post]
func (h *ExportHandler) ExportMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	h.enqueue(c, jobs.ExportRequest{RequestedBy: userID, UserID: &userID})
}

// @Summary Export all reservations
// @Description Queue a CSV export of every reservation in a date range
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExportReportRequest false "Date range"
// @Success 202 {object} resdto.Envelope{data=resdto.ExportResponse}
// @Failure 400 {object} httperr.Response
// @Router /admin/reports/export [post]
func (h *ExportHandler) ExportAll(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.ExportReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, err, "Invalid request format")
			return
		}
	}
	if req.From != nil && req.To != nil && req.To.Before(*req.From) {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("to before from"), "Invalid date range", nil)
		return
	}
	h.enqueue(c, jobs.ExportRequest{RequestedBy: userID, From: req.From, To: req.To})
}

func (h *ExportHandler) enqueue(c *gin.Context, req jobs.ExportRequest) {
	queued, err := h.enqueuer.EnqueueExport(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.OK("Export started", resdto.FromEnqueuedExport(queued)))
}

// @Summary List reports
// @Description Finished CSV exports in the export directory, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.ReportFileResponse}
// @Router /admin/reports [get]
func (h *ExportHandler) Reports(c *gin.Context) {
	files, err := jobs.ListExports(h.dir)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromExportFiles(files)))
}

// @Summary Download export
// @Description Download a finished CSV export. Users may only fetch their own files.
// @Tags exports
// @Produce text/csv
// @Security BearerAuth
// @Param filename path string true "Export file name"
// @Success 200 {file} file
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /exports/{filename} [get]
func (h *ExportHandler) Download(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	filename := c.Param("filename")
	path, err := jobs.ExportPath(h.dir, filename)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filename", nil)
		return
	}
	if !middleware.IsAdmin(c) && !jobs.OwnsExport(filename, userID) {
		httperr.AbortWithError(c, http.StatusForbidden, errForeignExport, "Access denied", nil)
		return
	}
	if _, err := os.Stat(path); err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Export not found or not ready", nil)
		return
	}
	c.FileAttachment(path, filename)
}
