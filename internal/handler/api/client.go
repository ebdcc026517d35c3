package api

import (
	"errors"
	"net/http"

	reqdto "proposal-service/internal/handler/dto/request"
	resdto "proposal-service/internal/handler/dto/response"
	"proposal-service/internal/handler/middleware"
	"proposal-service/internal/usecase/commands"
	"proposal-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clientCommands commands.ClientCommands
	clientQueries  queries.ClientQueries
}

func NewClientHandler(clientCommands commands.ClientCommands, clientQueries queries.ClientQueries) *ClientHandler {
	return &ClientHandler{
		clientCommands: clientCommands,
		clientQueries:  clientQueries,
	}
}

// @Summary Create client
// @Description Register a client company owned by the caller
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateClientRequest true "Client request"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.clientCommands.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeClientError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromClientView(view))
}

// @Summary List clients
// @Description List clients visible to the caller
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ClientResponse
// @Failure 401 {object} map[string]string
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.clientQueries.List(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientViews(views))
}

// @Summary Get client
// @Description Get one client owned by the caller
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	view, err := h.clientQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.writeClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

// @Summary Update client
// @Description Partially update one client owned by the caller
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param request body reqdto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /clients/{id} [patch]
func (h *ClientHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}

	var req reqdto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.clientCommands.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.writeClientError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromClientView(view))
}

func (h *ClientHandler) writeClientError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
