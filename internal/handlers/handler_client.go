package handlers

import (
	"net/http"

	portssvc "github.com/jvamontagens/jva_backend/internal/core/ports/services"
	"github.com/jvamontagens/jva_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// registerClientRoutes registers routes related to clients.
func registerClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:cnpj", h.getClient)
		clients.PUT("/:cnpj", h.updateClient)
		clients.DELETE("/:cnpj", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), req, session)
	if err != nil {
		respondError(c, err, "create client")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Security BearerAuth
// @Router /api/v1/clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// getClient godoc
// @Summary Get a client by CNPJ
// @Tags clients
// @Produce json
// @Param cnpj path string true "Client CNPJ"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/clients/{cnpj} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), c.Param("cnpj"), session)
	if err != nil {
		respondError(c, err, "get client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param cnpj path string true "Client CNPJ"
// @Param client body dto.UpdateClientRequest true "Fields to change"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/clients/{cnpj} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), c.Param("cnpj"), req, session)
	if err != nil {
		respondError(c, err, "update client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Fails with 422 while parks still reference the client.
// @Tags clients
// @Param cnpj path string true "Client CNPJ"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/clients/{cnpj} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), c.Param("cnpj"), session); err != nil {
		respondError(c, err, "delete client")
		return
	}
	c.Status(http.StatusNoContent)
}
