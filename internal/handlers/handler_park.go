package handlers

import (
	"net/http"

	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// parkHandler handles HTTP requests related to parks.
type parkHandler struct {
	parkService portssvc.ParkSvcFacade
}

func newParkHandler(ps portssvc.ParkSvcFacade) *parkHandler {
	return &parkHandler{parkService: ps}
}

// registerParkRoutes registers routes related to parks.
func registerParkRoutes(rg *gin.RouterGroup, parkService portssvc.ParkSvcFacade) {
	h := newParkHandler(parkService)

	parks := rg.Group("/parks")
	{
		parks.POST("", h.createPark)
		parks.GET("", h.listParks)
		parks.GET("/:parkId", h.getPark)
		parks.PUT("/:parkId", h.updatePark)
		parks.DELETE("/:parkId", h.deletePark)
	}
}

// createPark godoc
// @Summary Create a park
// @Tags parks
// @Accept json
// @Produce json
// @Param park body dto.CreateParkRequest true "Park details"
// @Success 201 {object} dto.ParkResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/parks [post]
func (h *parkHandler) createPark(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.CreateParkRequest
	if !bindJSON(c, &req) {
		return
	}

	park, err := h.parkService.CreatePark(c.Request.Context(), req, session)
	if err != nil {
		respondError(c, err, "create park")
		return
	}
	c.JSON(http.StatusCreated, dto.ToParkResponse(park))
}

// listParks godoc
// @Summary List parks
// @Tags parks
// @Produce json
// @Param clientCnpj query string false "Only parks of this client"
// @Success 200 {array} dto.ParkResponse
// @Security BearerAuth
// @Router /api/v1/parks [get]
func (h *parkHandler) listParks(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var clientCNPJ *string
	if raw := c.Query("clientCnpj"); raw != "" {
		clientCNPJ = &raw
	}

	parks, err := h.parkService.ListParks(c.Request.Context(), clientCNPJ, session)
	if err != nil {
		respondError(c, err, "list parks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListParkResponse(parks))
}

// getPark godoc
// @Summary Get a park
// @Tags parks
// @Produce json
// @Param parkId path int true "Park ID"
// @Success 200 {object} dto.ParkResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/parks/{parkId} [get]
func (h *parkHandler) getPark(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	parkID, ok := int64Param(c, "parkId")
	if !ok {
		return
	}

	park, err := h.parkService.GetPark(c.Request.Context(), parkID, session)
	if err != nil {
		respondError(c, err, "get park")
		return
	}
	c.JSON(http.StatusOK, dto.ToParkResponse(park))
}

// updatePark godoc
// @Summary Update a park
// @Tags parks
// @Accept json
// @Produce json
// @Param parkId path int true "Park ID"
// @Param park body dto.UpdateParkRequest true "Fields to change"
// @Success 200 {object} dto.ParkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/parks/{parkId} [put]
func (h *parkHandler) updatePark(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	parkID, ok := int64Param(c, "parkId")
	if !ok {
		return
	}
	var req dto.UpdateParkRequest
	if !bindJSON(c, &req) {
		return
	}

	park, err := h.parkService.UpdatePark(c.Request.Context(), parkID, req, session)
	if err != nil {
		respondError(c, err, "update park")
		return
	}
	c.JSON(http.StatusOK, dto.ToParkResponse(park))
}

// deletePark godoc
// @Summary Delete a park
// @Tags parks
// @Param parkId path int true "Park ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/parks/{parkId} [delete]
func (h *parkHandler) deletePark(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	parkID, ok := int64Param(c, "parkId")
	if !ok {
		return
	}

	if err := h.parkService.DeletePark(c.Request.Context(), parkID, session); err != nil {
		respondError(c, err, "delete park")
		return
	}
	c.Status(http.StatusNoContent)
}
