package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"proposal-service/internal/domain/user"
	"proposal-service/internal/handler/api"
	"proposal-service/internal/handler/middleware"
	"proposal-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Proposal *api.ProposalHandler
	Client   *api.ClientHandler
	Catalog  *api.CatalogHandler
	Invoice  *api.InvoiceHandler
	Pricing  *api.PricingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Client.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Client.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Client.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Client.Update},
			})
		}

		catalog := apiGroup.Group("/catalog")
		catalog.Use(authMiddleware.RequireAuth())
		{
			adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
			addRoutes(catalog, []route{
				{Method: http.MethodGet, Path: "/packages", Handler: h.Catalog.ListPackages},
				{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.ListServices},
				{Method: http.MethodPost, Path: "/packages", Handler: h.Catalog.CreatePackage, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/packages/:id", Handler: h.Catalog.UpdatePackage, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/packages/:id", Handler: h.Catalog.DeactivatePackage, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/services", Handler: h.Catalog.CreateService, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/services/:id", Handler: h.Catalog.UpdateService, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Catalog.DeactivateService, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		proposals := apiGroup.Group("/proposals")
		proposals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(proposals, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Proposal.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Proposal.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Proposal.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Proposal.Update},
				{Method: http.MethodPost, Path: "/:id/send", Handler: h.Proposal.Send},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Proposal.Accept},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: h.Proposal.Decline},
				{Method: http.MethodPost, Path: "/:id/invoice", Handler: h.Invoice.Issue},
			})
		}

		invoices := apiGroup.Group("/invoices")
		invoices.Use(authMiddleware.RequireAuth())
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Invoice.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.Get},
			})
		}

		pricing := apiGroup.Group("/pricing")
		pricing.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/preview", Handler: h.Pricing.Preview},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
