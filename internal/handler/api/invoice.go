package api

import (
	"errors"
	"net/http"

	resdto "proposal-service/internal/handler/dto/response"
	"proposal-service/internal/handler/middleware"
	"proposal-service/internal/usecase/commands"
	"proposal-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	invoiceCommands commands.InvoiceCommands
	invoiceQueries  queries.InvoiceQueries
}

func NewInvoiceHandler(invoiceCommands commands.InvoiceCommands, invoiceQueries queries.InvoiceQueries) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceCommands: invoiceCommands,
		invoiceQueries:  invoiceQueries,
	}
}

// @Summary Issue invoice
// @Description Issue the invoice for an accepted proposal
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Proposal ID"
// @Success 201 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /proposals/{id}/invoice [post]
func (h *InvoiceHandler) Issue(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	proposalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal ID"})
		return
	}

	view, err := h.invoiceCommands.Issue(c.Request.Context(), actor, proposalID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProposalNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
		case errors.Is(err, commands.ErrProposalNotAccepted):
			c.JSON(http.StatusConflict, gin.H{"error": "Proposal has not been accepted"})
		case errors.Is(err, commands.ErrInvoiceExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Invoice already issued for this proposal"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromInvoiceView(view))
}

// @Summary List invoices
// @Description List invoices visible to the caller
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InvoiceResponse
// @Failure 401 {object} map[string]string
// @Router /invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.invoiceQueries.List(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceViews(views))
}

// @Summary Get invoice
// @Description Get one invoice visible to the caller
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invoice ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invoices/{id} [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice ID"})
		return
	}

	view, err := h.invoiceQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, queries.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}
