package api

import (
	"net/http"

	reqdto "proposal-service/internal/handler/dto/request"
	resdto "proposal-service/internal/handler/dto/response"
	"proposal-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type PricingHandler struct {
	pricingQueries queries.PricingQueries
}

func NewPricingHandler(pricingQueries queries.PricingQueries) *PricingHandler {
	return &PricingHandler{pricingQueries: pricingQueries}
}

// @Summary Preview pricing
// @Description Price a selection against current catalog prices without creating a proposal
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PricingPreviewRequest true "Selection to price"
// @Success 200 {object} resdto.PricingPreviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /pricing/preview [post]
func (h *PricingHandler) Preview(c *gin.Context) {
	var req reqdto.PricingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	input := queries.PricingPreviewInput{
		PackageID:      req.PackageID,
		IncludePackage: req.IncludePackage,
		Services: lo.Map(req.Services, func(s reqdto.ProposalServiceRequest, _ int) queries.PreviewServiceInput {
			return queries.PreviewServiceInput{
				ServiceID: s.ServiceID,
				Discount:  s.Discount.ToDomain(),
			}
		}),
		PackageDiscount: req.PackageDiscount.ToDomain(),
		OverallDiscount: req.OverallDiscount.ToDomain(),
		IncludesTax:     req.IncludesTax,
	}

	breakdown, err := h.pricingQueries.Preview(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
