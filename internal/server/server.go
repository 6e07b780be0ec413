package server

import (
	"fmt"
	"net/http"

	"havjob/internal/handlers"
	"havjob/internal/middle"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerParams holds the dependencies needed for the API server
type ServerParams struct {
	fx.In

	Logger *zap.Logger
	Port   int `name:"port"`

	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Mobile       *handlers.MobileHandler
	Missions     *handlers.MissionHandler
	Applications *handlers.ApplicationHandler
	Favorites    *handlers.FavoriteHandler
	Reviews      *handlers.ReviewHandler
	Users        *handlers.UserHandler
	Boosts       *handlers.BoostHandler

	Identity *middle.IdentityMiddleware
	Audit    *middle.AuditMiddleware
}

// NewServer builds the gin engine, registers the route table and wraps it in
// an http.Server bound to the configured port.
func NewServer(p ServerParams) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middle.RequestLogger(p.Logger),
		p.Identity.Handler(),
		p.Audit.Handler(),
	)

	registerRoutes(router, p)

	addr := fmt.Sprintf(":%d", p.Port)
	p.Logger.Info("starting server", zap.String("addr", addr))

	return &http.Server{
		Addr:    addr,
		Handler: router,
	}
}

func registerRoutes(router *gin.Engine, p ServerParams) {
	api := router.Group("/api")

	api.GET("/health", p.Health.Get)

	// session authentication
	api.POST("/auth/register-phone", p.Auth.RegisterPhone)
	api.POST("/auth/login-phone", p.Auth.LoginPhone)
	api.POST("/auth/logout-phone", p.Auth.Logout)
	api.GET("/auth/user", middle.RequireUser(), p.Auth.CurrentUser)
	api.PATCH("/auth/user/profile", middle.RequireUser(), p.Auth.UpdateOwnProfile)
	api.POST("/auth/admin-login", p.Auth.AdminLogin)
	api.GET("/auth/admin-status", p.Auth.AdminStatus)
	api.POST("/auth/admin-logout", p.Auth.Logout)

	// mobile (JWT) authentication
	api.POST("/mobile/register", p.Mobile.Register)
	api.POST("/mobile/login", p.Mobile.Login)
	api.POST("/mobile/refresh", p.Mobile.Refresh)
	api.GET("/mobile/user", middle.RequireUser(), p.Mobile.CurrentUser)

	// missions
	api.GET("/missions", p.Missions.List)
	api.GET("/missions/:id", p.Missions.Get)
	api.POST("/missions", middle.RequireUser(), p.Missions.Create)
	api.PATCH("/missions/:id", middle.RequireUser(), p.Missions.Update)
	api.DELETE("/missions/:id", middle.RequireUser(), p.Missions.Delete)

	// applications
	api.GET("/missions/:id/applications", middle.RequireUser(), p.Applications.ListByMission)
	api.POST("/missions/:id/apply", middle.RequireUser(), p.Applications.Apply)
	api.PATCH("/applications/:id", middle.RequireUser(), p.Applications.Update)

	// favorites
	api.POST("/missions/:id/favorite", middle.RequireUser(), p.Favorites.Add)
	api.DELETE("/missions/:id/favorite", middle.RequireUser(), p.Favorites.Remove)
	api.GET("/missions/:id/is-favorite", middle.RequireUser(), p.Favorites.IsFavorite)

	// users and profiles
	api.GET("/users", middle.RequireAdmin(), p.Users.List)
	api.GET("/users/me/applications", middle.RequireUser(), p.Applications.ListMine)
	api.GET("/users/me/favorites", middle.RequireUser(), p.Favorites.ListMine)
	api.PATCH("/users/me", middle.RequireUser(), p.Users.UpdateMe)
	api.GET("/users/:id", p.Users.Get)
	api.GET("/users/:id/missions", p.Missions.ListByClient)
	api.GET("/users/:id/reviews", p.Reviews.ListForUser)
	api.GET("/freelances", p.Users.Freelances)

	// reviews
	api.POST("/reviews", middle.RequireUser(), p.Reviews.Create)

	// admin
	api.POST("/admin/boost-user/:id", middle.RequireAdmin(), p.Boosts.BoostUser)
	api.POST("/admin/boost-mission/:id", middle.RequireAdmin(), p.Boosts.BoostMission)
	api.PATCH("/admin/users/:id", middle.RequireAdmin(), p.Users.AdminUpdate)
	api.DELETE("/admin/users/:id", middle.RequireAdmin(), p.Users.AdminDelete)
}
