package bootstrap

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/devfolio/portfolio-backend/config"
	httpapi "github.com/devfolio/portfolio-backend/internal/api/http"
	"github.com/devfolio/portfolio-backend/internal/auth"
	authmw "github.com/devfolio/portfolio-backend/internal/auth/middleware"
	"github.com/devfolio/portfolio-backend/internal/cache"
	"github.com/devfolio/portfolio-backend/internal/images"
	msghttp "github.com/devfolio/portfolio-backend/internal/messages/http"
	msgrepo "github.com/devfolio/portfolio-backend/internal/messages/repository"
	msgsvc "github.com/devfolio/portfolio-backend/internal/messages/service"
	"github.com/devfolio/portfolio-backend/internal/middleware"
	profhttp "github.com/devfolio/portfolio-backend/internal/profile/http"
	profrepo "github.com/devfolio/portfolio-backend/internal/profile/repository"
	profsvc "github.com/devfolio/portfolio-backend/internal/profile/service"
	projhttp "github.com/devfolio/portfolio-backend/internal/projects/http"
	projrepo "github.com/devfolio/portfolio-backend/internal/projects/repository"
	projsvc "github.com/devfolio/portfolio-backend/internal/projects/service"
	"github.com/devfolio/portfolio-backend/internal/store"
)

type RouterDeps struct {
	Config      *config.Config
	Store       *store.Store
	Gate        *auth.Gate
	CacheClient *redis.Client
}

// Services groups the service layer so main can hand pieces of it to the
// cache warmer.
type Services struct {
	Projects *projsvc.Service
	Messages *msgsvc.Service
	Profile  *profsvc.Service
}

func BuildRouter(dep RouterDeps) (*gin.Engine, *Services, error) {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler("portfolio-backend", dep.Config.App.Version, dep.Store, dep.CacheClient)
	healthHandler.RegisterRoutes(r)

	pipeline, err := images.NewPipeline(dep.Config.Image.MaxWidth, dep.Config.Image.Quality)
	if err != nil {
		return nil, nil, err
	}

	var contentCache *cache.Cache
	if dep.CacheClient != nil {
		contentCache = cache.New(dep.CacheClient, dep.Config.Cache.TTL)
	}

	svcs := &Services{
		Projects: projsvc.NewService(projrepo.NewRepo(dep.Store), pipeline, contentCache),
		Messages: msgsvc.NewService(msgrepo.NewRepo(dep.Store)),
		Profile:  profsvc.NewService(profrepo.NewRepo(dep.Store), pipeline, contentCache),
	}

	projectHandler := projhttp.NewHandler(svcs.Projects)
	messageHandler := msghttp.NewHandler(svcs.Messages)
	profileHandler := profhttp.NewHandler(svcs.Profile)

	api := r.Group("/api/v1")

	projectHandler.RegisterPublic(api.Group("/projects"))
	profileHandler.RegisterPublic(api.Group("/profile"))

	limiter := middleware.NewRateLimiter(dep.Config.RateLimit.MessagesPerMinute, dep.Config.RateLimit.Burst)
	publicMessages := api.Group("/messages")
	publicMessages.Use(limiter.Middleware())
	messageHandler.RegisterPublic(publicMessages)

	admin := api.Group("/admin")
	admin.Use(authmw.AdminOnly(dep.Gate))

	projectHandler.RegisterAdmin(admin.Group("/projects"))
	messageHandler.RegisterAdmin(admin.Group("/messages"))
	profileHandler.RegisterAdmin(admin.Group("/profile"))

	admin.GET("/session", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "identity": auth.CurrentIdentity(c)})
	})

	return r, svcs, nil
}
