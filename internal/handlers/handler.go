package handlers

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"todoapi/internal/logger"
	"todoapi/internal/service"
	"todoapi/internal/token"
)

// DBPinger is the slice of *sql.DB the health endpoint needs.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// Handler wires the HTTP layer to services, token verification and logging.
type Handler struct {
	services *service.Service
	tokens   *token.Service
	log      *logger.Logger
	db       DBPinger
}

// NewHandler constructs a new HTTP handler with dependencies. db may be nil;
// the health endpoint then skips the storage check.
func NewHandler(services *service.Service, tokens *token.Service, log *logger.Logger, db DBPinger) *Handler {
	return &Handler{services: services, tokens: tokens, log: log, db: db}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// corsOrigins is the allow-list for the browser client; empty means
// same-origin only.
func (h *Handler) InitRoutes(corsOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = corsOrigins
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		router.Use(cors.New(cfg))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Resource endpoints (protected)
	h.registerResourceRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.GET("/me", h.identityMiddleware, h.me)
	}
}

func (h *Handler) registerResourceRoutes(r *gin.Engine) {
	todos := r.Group("/todos", h.identityMiddleware)
	{
		todos.GET("", h.listTodos)
		todos.POST("", h.createTodo)
		todos.GET("/:id", h.getTodo)
		todos.PUT("/:id", h.updateTodo)
		todos.DELETE("/:id", h.deleteTodo)
	}

	users := r.Group("/users", h.identityMiddleware)
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.GET("/:id", h.getUser)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}
}

// @Summary      Health check
// @Description  Optionally verifies storage with ?check=db
// @Tags         system
// @Produce      json
// @Param        check  query  string  false  "Set to 'db' to ping the database"
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	resp := gin.H{"status": "ok"}
	if c.Query("check") == "db" && h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			resp["status"] = "degraded"
			resp["checks"] = gin.H{"db": "error"}
		} else {
			resp["checks"] = gin.H{"db": "ok"}
		}
	}
	respondData(c, http.StatusOK, resp)
}
