package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breadthpulse/internal/domain/dto"
	"breadthpulse/internal/service"
)

// Handler provides HTTP handlers for the breadth and universe endpoints.
//
// Responsibilities:
//   - Interact with the service layer using the request context
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.BreadthService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.BreadthService) *Handler {
	return &Handler{svc: svc}
}

// GetBreadth handles GET /api/v1/breadth requests.
//
// Responses:
//   - 200 OK: the per-minute advance/decline series plus the current summary.
//   - 404 Not Found: the trailing window holds no snapshots. This is a
//     distinct outcome from a series whose latest minute nets to zero.
//   - 500 Internal Server Error: the snapshot store could not be queried.
//
// GetBreadth godoc
// @Summary      Market breadth over the trailing window
// @Description  Buckets the last hour of snapshots by minute and tallies advances vs declines per bucket
// @Tags         breadth
// @Produce      json
// @Success      200  {object}  dto.BreadthResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse    "No data in window"
// @Failure      500  {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/breadth [get]
func (h *Handler) GetBreadth(c *gin.Context) {
	b, err := h.svc.GetBreadth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute breadth", err))
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("no data found", nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewBreadthResponse(b))
}

// GetUniverse handles GET /api/v1/universe requests.
//
// Responses:
//   - 200 OK: latest quote per configured security; empty array when the
//     store has no rows for the allow-list.
//   - 500 Internal Server Error: the snapshot store could not be queried.
//
// GetUniverse godoc
// @Summary      Latest quotes for the configured universe
// @Description  Returns the most recent stored snapshot for each security in the fixed allow-list
// @Tags         universe
// @Produce      json
// @Success      200  {array}   models.UniverseQuote  "Success"
// @Failure      500  {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/universe [get]
func (h *Handler) GetUniverse(c *gin.Context) {
	quotes, err := h.svc.GetUniverse(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch universe", err))
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// GetOverview handles GET /api/v1/overview requests, combining both
// queries for dashboard consumers. Unlike /breadth, an empty window is
// reported as a null breadth field rather than a 404, so the universe
// half of the page still renders.
//
// GetOverview godoc
// @Summary      Combined breadth and universe view
// @Description  Fetches market breadth and universe quotes concurrently; breadth is null when the window is empty
// @Tags         breadth
// @Produce      json
// @Success      200  {object}  dto.OverviewResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	b, quotes, err := h.svc.GetOverview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build overview", err))
		return
	}

	c.JSON(http.StatusOK, dto.OverviewResponse{
		Breadth:  dto.NewBreadthResponse(b),
		Universe: quotes,
	})
}
