package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "proposal-service/internal/handler/dto/request"
	resdto "proposal-service/internal/handler/dto/response"
	"proposal-service/internal/handler/middleware"
	"proposal-service/internal/usecase/commands"
	"proposal-service/internal/usecase/queries"
	"proposal-service/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProposalHandler struct {
	proposalCommands commands.ProposalCommands
	proposalQueries  queries.ProposalQueries
}

func NewProposalHandler(proposalCommands commands.ProposalCommands, proposalQueries queries.ProposalQueries) *ProposalHandler {
	return &ProposalHandler{
		proposalCommands: proposalCommands,
		proposalQueries:  proposalQueries,
	}
}

// @Summary Create proposal
// @Description Create a draft proposal with an allocated order ID
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProposalRequest true "Proposal request"
// @Success 201 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /proposals [post]
func (h *ProposalHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.proposalCommands.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeProposalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProposalView(view))
}

// @Summary List proposals
// @Description List proposals visible to the caller
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProposalListResponse
// @Failure 401 {object} map[string]string
// @Router /proposals [get]
func (h *ProposalHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.proposalQueries.List(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProposalListItems(items))
}

// @Summary Get proposal
// @Description Get one proposal with its full pricing breakdown
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /proposals/{id} [get]
func (h *ProposalHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal ID"})
		return
	}

	view, err := h.proposalQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.writeProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProposalView(view))
}

// @Summary Update proposal
// @Description Replace the selection of a draft proposal and reprice it
// @Tags proposals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Param request body reqdto.UpdateProposalRequest true "Updated selection"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /proposals/{id} [patch]
func (h *ProposalHandler) Update(c *gin.Context) {
	actor, id, req, ok := h.bindUpdate(c)
	if !ok {
		return
	}

	view, err := h.proposalCommands.Revise(c.Request.Context(), actor, id, req)
	if err != nil {
		h.writeProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProposalView(view))
}

// @Summary Send proposal
// @Description Mark a draft proposal as sent and start its validity window
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /proposals/{id}/send [post]
func (h *ProposalHandler) Send(c *gin.Context) {
	h.transition(c, h.proposalCommands.Send)
}

// @Summary Accept proposal
// @Description Mark a sent proposal as accepted
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /proposals/{id}/accept [post]
func (h *ProposalHandler) Accept(c *gin.Context) {
	h.transition(c, h.proposalCommands.Accept)
}

// @Summary Decline proposal
// @Description Mark a sent proposal as declined
// @Tags proposals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 200 {object} resdto.ProposalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /proposals/{id}/decline [post]
func (h *ProposalHandler) Decline(c *gin.Context) {
	h.transition(c, h.proposalCommands.Decline)
}

type transitionFn func(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.ProposalView, error)

func (h *ProposalHandler) transition(c *gin.Context, fn transitionFn) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal ID"})
		return
	}

	view, err := fn(c.Request.Context(), actor, id)
	if err != nil {
		h.writeProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProposalView(view))
}

func (h *ProposalHandler) bindUpdate(c *gin.Context) (shared.Actor, uuid.UUID, reqdto.UpdateProposalRequest, bool) {
	var req reqdto.UpdateProposalRequest

	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return shared.Actor{}, uuid.Nil, req, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal ID"})
		return shared.Actor{}, uuid.Nil, req, false
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return shared.Actor{}, uuid.Nil, req, false
	}

	return actor, id, req, true
}

func (h *ProposalHandler) writeProposalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case errors.Is(err, commands.ErrProposalNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
	case errors.Is(err, commands.ErrProposalNotDraft):
		c.JSON(http.StatusConflict, gin.H{"error": "Proposal is no longer a draft"})
	case errors.Is(err, commands.ErrProposalNotSent):
		c.JSON(http.StatusConflict, gin.H{"error": "Proposal has not been sent"})
	case errors.Is(err, commands.ErrProposalExpired):
		c.JSON(http.StatusGone, gin.H{"error": "Proposal has expired"})
	case errors.Is(err, commands.ErrOrderIDConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Order number allocation conflict, retry the request"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
