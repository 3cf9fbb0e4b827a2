package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"huellitas/internal/domain/user"
	"huellitas/internal/handler/api"
	"huellitas/internal/handler/middleware"
	"huellitas/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Service *api.ServiceHandler
	Product *api.ProductHandler
	Booking *api.BookingHandler
	Cart    *api.CartHandler
	Wizard  *api.WizardHandler
	Pet     *api.PetHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
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
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/services", Handler: h.Service.List},
			{Method: http.MethodGet, Path: "/products", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/products/:id", Handler: h.Product.Get},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items/:productId", Handler: h.Cart.UpdateItem},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
			})
		}

		wizard := apiGroup.Group("/wizard")
		wizard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wizard, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Wizard.GetState},
				{Method: http.MethodPost, Path: "/service", Handler: h.Wizard.SelectService},
				{Method: http.MethodPost, Path: "/date", Handler: h.Wizard.SelectDate},
				{Method: http.MethodPost, Path: "/time", Handler: h.Wizard.SelectTime},
				{Method: http.MethodPost, Path: "/pet", Handler: h.Wizard.SelectPet},
				{Method: http.MethodPost, Path: "/addons", Handler: h.Wizard.ToggleAddon},
				{Method: http.MethodPost, Path: "/observations", Handler: h.Wizard.SetObservations},
				{Method: http.MethodPost, Path: "/advance", Handler: h.Wizard.Advance},
				{Method: http.MethodPost, Path: "/retreat", Handler: h.Wizard.Retreat},
				{Method: http.MethodPost, Path: "/confirm", Handler: h.Wizard.Confirm},
				{Method: http.MethodPost, Path: "/reset", Handler: h.Wizard.Reset},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Wizard.Calendar},
				{Method: http.MethodGet, Path: "/slots", Handler: h.Wizard.Slots},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Wizard.ListBookings},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListAll},
			})
		}

		pets := apiGroup.Group("/pets")
		pets.Use(authMiddleware.RequireAuth())
		{
			addRoutes(pets, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Pet.List},
				{Method: http.MethodPost, Path: "", Handler: h.Pet.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Pet.Update},
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
