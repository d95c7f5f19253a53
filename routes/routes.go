package routes

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gorilla/mux"

	"newsboard-api/config"
	"newsboard-api/controllers"
	"newsboard-api/db"
	"newsboard-api/middlewares"
	"newsboard-api/storage"
	"newsboard-api/web"
)

// SetupRoutes sets up the application routes and middlewares.
func SetupRoutes(cfg config.Config) http.Handler {
	router := mux.NewRouter()

	// Apply global middlewares
	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(middlewares.LoggingMiddleware)

	// Initialize rate limiter and apply to all routes
	rateLimiter := middlewares.NewRateLimiter(30, time.Minute, 2*time.Minute)
	router.Use(rateLimiter.Limit)

	// API routes
	apiRouter := router.PathPrefix("/api").Subrouter()
	controllers.SetupHealthRoute(apiRouter)

	articleHandler := &controllers.ArticleHandler{
		Store: storage.NewArticleStorage(db.DB, db.RedisClient, cfg.CacheTTL),
	}
	articleHandler.SetupArticleRoutes(apiRouter)

	// Register pprof routes to enable profiling
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	// Serve the embedded browser client at the site root
	router.PathPrefix("/").Handler(http.FileServer(web.Assets()))

	return router
}
