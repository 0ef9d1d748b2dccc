package api

import (
	"net/http"

	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/handler/httperr"
	"parking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	q queries.LotQueries
}

func NewLotHandler(q queries.LotQueries) *LotHandler {
	return &LotHandler{q: q}
}

// @Summary List parking lots
// @Description List lots with live availability
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.Envelope{data=[]resdto.LotResponse}
// @Router /lots [get]
func (h *LotHandler) List(c *gin.Context) {
	lots, err := h.q.ListLots(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromLotViews(lots)))
}

// @Summary Get parking lot
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.Envelope{data=resdto.LotResponse}
// @Failure 404 {object} httperr.Response
// @Router /lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetLot(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromLotView(view)))
}

// @Summary List available spots
// @Tags lots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lot ID"
// @Success 200 {object} resdto.Envelope{data=[]resdto.SpotResponse}
// @Failure 404 {object} httperr.Response
// @Router /lots/{id}/available-spots [get]
func (h *LotHandler) AvailableSpots(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	spots, err := h.q.AvailableSpots(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK("", resdto.FromSpotViews(spots)))
}
