package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"bargain-market/internal/domain/user"
	"bargain-market/internal/handler/api"
	"bargain-market/internal/handler/middleware"
	"bargain-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	Health         *api.HealthHandler
	Bargain        *api.BargainHandler
	Price          *api.PriceHandler
	Cart           *api.CartHandler
	Order          *api.OrderHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", p.Health.Check)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.AuthMiddleware.RequireAuth())
	{
		bargains := apiGroup.Group("/bargains")
		addRoutes(bargains, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Bargain.Open},
			{Method: http.MethodGet, Path: "", Handler: p.Bargain.List},
			{Method: http.MethodGet, Path: "/active", Handler: p.Bargain.FindActive},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Bargain.Get},
			{Method: http.MethodPost, Path: "/:id/counter", Handler: p.Bargain.Counter},
			{Method: http.MethodPost, Path: "/:id/revise", Handler: p.Bargain.Revise},
			{Method: http.MethodPost, Path: "/:id/accept", Handler: p.Bargain.Accept},
			{Method: http.MethodPost, Path: "/:id/reject", Handler: p.Bargain.Reject},
			{Method: http.MethodPost, Path: "/:id/messages", Handler: p.Bargain.PostMessage},
		})

		prices := apiGroup.Group("/prices")
		addRoutes(prices, []route{
			{Method: http.MethodGet, Path: "/:product_id", Handler: p.Price.Get},
			{Method: http.MethodDelete, Path: "/:buyer_id/:product_id", Handler: p.Price.Retract, Mw: []gin.HandlerFunc{p.AuthMiddleware.RequireRole(user.RoleSeller)}},
		})

		cart := apiGroup.Group("/cart")
		addRoutes(cart, []route{
			{Method: http.MethodGet, Path: "", Handler: p.Cart.Get},
			{Method: http.MethodDelete, Path: "", Handler: p.Cart.Clear},
			{Method: http.MethodPost, Path: "/price", Handler: p.Cart.Price},
			{Method: http.MethodPut, Path: "/items/:product_id", Handler: p.Cart.SetItem},
			{Method: http.MethodDelete, Path: "/items/:product_id", Handler: p.Cart.RemoveItem},
		})

		orders := apiGroup.Group("/orders")
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "", Handler: p.Order.Create},
			{Method: http.MethodGet, Path: "", Handler: p.Order.List},
			{Method: http.MethodPost, Path: "/checkout", Handler: p.Order.Checkout},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Order.Get},
			{Method: http.MethodPost, Path: "/:id/status", Handler: p.Order.UpdateStatus},
		})
	}
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
