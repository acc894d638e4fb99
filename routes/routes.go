package routes

import (
	"net/http"
	"time"

	"studycompass/handlers"
	"studycompass/middleware"
	"studycompass/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
	}
}

// RegisterRoomRoutes registers room availability endpoints. These are public:
// anyone on campus can check whether a room is free.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("/free", hb.FreeRoomsHandler)
		api.GET("/:id/free", hb.RoomFreeStatusHandler)
		api.POST("/:id/check", hb.CheckRoomHandler)
	}
}

// RegisterConflictRoutes registers conflict detection endpoints. They need an
// authenticated user: conflicts are computed against the caller's own
// commitments.
func RegisterConflictRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/conflicts")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/check", hb.DetectConflictsHandler)
	}
}

// RegisterPollRoutes registers scheduling poll endpoints. Responding is open
// so that participants without accounts can answer; creating requires auth.
func RegisterPollRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/polls")
	{
		api.POST("/validate-blocks", hb.ValidateBlocksHandler)
		api.POST("/:id/responses", hb.RespondHandler)
		api.GET("/:id/overlaps", hb.OverlapsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.CreatePollHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterConflictRoutes(r, hb)
	RegisterPollRoutes(r, hb)
	RegisterHealthRoute(r)
}
