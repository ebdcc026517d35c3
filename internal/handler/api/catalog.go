package api

import (
	"errors"
	"net/http"

	"proposal-service/internal/domain/user"
	reqdto "proposal-service/internal/handler/dto/request"
	resdto "proposal-service/internal/handler/dto/response"
	"proposal-service/internal/handler/middleware"
	"proposal-service/internal/usecase/commands"
	"proposal-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the package and service catalog. Reads are
// open to any authenticated user; writes are wired admin-only in the
// router.
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

// @Summary List packages
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include deactivated entries (admin views)"
// @Success 200 {array} resdto.PackageResponse
// @Failure 401 {object} map[string]string
// @Router /catalog/packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	includeInactive := h.includeInactive(c)

	views, err := h.catalogQueries.ListPackages(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageViews(views))
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include deactivated entries (admin views)"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 401 {object} map[string]string
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	includeInactive := h.includeInactive(c)

	views, err := h.catalogQueries.ListServices(c.Request.Context(), includeInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Create package
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageRequest true "Package"
// @Success 201 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /catalog/packages [post]
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req reqdto.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreatePackage(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPackageView(view))
}

// @Summary Update package
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Param request body reqdto.UpdatePackageRequest true "Fields to update"
// @Success 200 {object} resdto.PackageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /catalog/packages/{id} [patch]
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdatePackage(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPackageView(view))
}

// @Summary Deactivate package
// @Description Hide a package from new proposals; existing snapshots are unaffected
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/packages/{id} [delete]
func (h *CatalogHandler) DeactivatePackage(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.catalogCommands.DeactivatePackage(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /catalog/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.CreateService(c.Request.Context(), req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary Update service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /catalog/services/{id} [patch]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.catalogCommands.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Deactivate service
// @Description Hide a service from new proposals; existing snapshots are unaffected
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /catalog/services/{id} [delete]
func (h *CatalogHandler) DeactivateService(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.catalogCommands.DeactivateService(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) includeInactive(c *gin.Context) bool {
	if c.Query("include_inactive") != "true" {
		return false
	}
	role, ok := middleware.GetUserRole(c)
	return ok && role == user.RoleAdmin
}

func (h *CatalogHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid catalog entry ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *CatalogHandler) writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrPackageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
