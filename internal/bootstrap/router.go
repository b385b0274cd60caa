package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rudirimachado/portfolio-backend/config"
	httpapi "github.com/rudirimachado/portfolio-backend/internal/api/http"
	"github.com/rudirimachado/portfolio-backend/internal/api/http/middleware"
	authhttp "github.com/rudirimachado/portfolio-backend/internal/auth/http"
	authmw "github.com/rudirimachado/portfolio-backend/internal/auth/middleware"
	authservice "github.com/rudirimachado/portfolio-backend/internal/auth/service"
	portfoliohttp "github.com/rudirimachado/portfolio-backend/internal/portfolio/http"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/service"
	"github.com/rudirimachado/portfolio-backend/internal/portfolio/store"
)

type RouterDeps struct {
	ServiceName string
	Config      *config.Config
	Source      service.RemoteSource
	Store       store.Store
	Tokens      *authservice.TokenService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  dep.Config.Server.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Config.App.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	aggregator := service.NewAggregator(dep.Source, dep.Store, dep.Config.GitHub.Username)
	projectService := service.NewProjectService(dep.Store)
	galleryService := service.NewGalleryService(dep.Store)

	portfolioHandler := portfoliohttp.New(aggregator, projectService, galleryService,
		dep.Config.Profile, dep.Config.GitHub.Username)
	authHandler := authhttp.New(dep.Config.Admin.Password, dep.Tokens)

	api := r.Group("/api/v1")
	portfolioHandler.RegisterPublic(api)

	admin := api.Group("/admin")
	authHandler.Register(admin)

	guarded := admin.Group("")
	guarded.Use(authmw.AdminAuth(dep.Tokens))
	portfolioHandler.RegisterAdmin(guarded)

	return r
}
