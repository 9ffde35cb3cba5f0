package api

import (
	"net/http"
	"strconv"

	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Load catalog
// @Description Fetch all venues and show the first page under the current search term
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.CatalogView
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/catalog [get]
func (h *CatalogHandler) Load(c *gin.Context) {
	view, err := h.catalogCommands.Load(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Filter catalog
// @Description Case-insensitive match on venue name or address
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.CatalogFilterRequest true "Search term"
// @Success 200 {object} queries.CatalogView
// @Router /api/catalog/filter [post]
func (h *CatalogHandler) Filter(c *gin.Context) {
	var req reqdto.CatalogFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}
	view, err := h.catalogCommands.Filter(c.Request.Context(), middleware.GetSessionID(c), req.Term)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Show more venues
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.CatalogView
// @Router /api/catalog/more [post]
func (h *CatalogHandler) ShowMore(c *gin.Context) {
	view, err := h.catalogCommands.ShowMore(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Venue details
// @Tags catalog
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} queries.VenueDetailView
// @Failure 404 {object} httperr.Response
// @Router /api/catalog/venues/{id} [get]
func (h *CatalogHandler) Venue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.catalogQueries.Venue(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		badRequest(c, err, msgInvalidID)
		return 0, false
	}
	return id, true
}
