// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, failure dispatch,
// metrics, CORS, security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - One chokepoint for every failed request: raised failures, route misses,
//     method mismatches, and recovered panics all render through the same
//     dispatcher
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/rosemary-art/go-gallery-backend/internal/apierr"
	"github.com/rosemary-art/go-gallery-backend/internal/config"
	"github.com/rosemary-art/go-gallery-backend/internal/domain"
	"github.com/rosemary-art/go-gallery-backend/internal/http/handlers"
	"github.com/rosemary-art/go-gallery-backend/internal/http/middleware"
	"github.com/rosemary-art/go-gallery-backend/internal/repo"
	"github.com/rosemary-art/go-gallery-backend/internal/services"
)

// paintingRepoShim adapts the repository free functions to the
// services.PaintingRepo interface expected by the PaintingService. This keeps
// services decoupled from the concrete repo package while reusing existing
// functions.
type paintingRepoShim struct{}

// CreatePainting proxies repo.CreatePainting.
func (paintingRepoShim) CreatePainting(ctx context.Context, db *gorm.DB, p *domain.Painting) (*domain.Painting, error) {
	return repo.CreatePainting(ctx, db, p)
}

// GetPainting proxies repo.GetPainting.
func (paintingRepoShim) GetPainting(ctx context.Context, db *gorm.DB, id string) (*domain.Painting, error) {
	return repo.GetPainting(ctx, db, id)
}

// CountPaintings proxies repo.CountPaintings.
func (paintingRepoShim) CountPaintings(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountPaintings(ctx, db)
}

// ListPaintingsPage proxies repo.ListPaintingsPage.
func (paintingRepoShim) ListPaintingsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Painting, error) {
	return repo.ListPaintingsPage(ctx, db, offset, limit)
}

// SavePainting proxies repo.SavePainting.
func (paintingRepoShim) SavePainting(ctx context.Context, db *gorm.DB, p *domain.Painting) error {
	return repo.SavePainting(ctx, db, p)
}

// DeletePainting proxies repo.DeletePainting.
func (paintingRepoShim) DeletePainting(ctx context.Context, db *gorm.DB, id string, force bool) error {
	return repo.DeletePainting(ctx, db, id, force)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), failure dispatch,
// rate limiting, CORS and security headers, health and metrics endpoints, and
// then mounts the versioned public API.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured request logs
//  4. Gzip: wraps the response writer ahead of the dispatcher
//  5. ErrorDispatch: renders raised failures after the chain unwinds;
//     installed before Recovery so recovered panics also flow through it
//  6. Recovery: converts panics into raised internal failures
//  7. Body size limiter
//  8. Metrics
//  9. Rate limiter (per user/IP)
//  10. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Compress responses for clients that accept it. Must wrap the
	//    dispatcher: its late write has to land while the compressor is
	//    still open.
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 5) Failure dispatch; everything raised below renders here
	dispatcher := apierr.NewDispatcher(log.Logger)
	r.Use(middleware.ErrorDispatch(dispatcher))

	// 6) Panic recovery raises an internal failure into the channel
	r.Use(middleware.Recovery())

	// 7) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 8) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 9) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 10) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		EnablePolicy: true,
	}))

	// Fallbacks: unmatched paths and mismatched verbs raise into the
	// failure channel so the dispatcher renders them uniformly.
	r.NoRoute(func(c *gin.Context) {
		handlers.Raise(c, apierr.RouteMiss())
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Raise(c, apierr.MethodNotAllowed())
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (optional)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: service ← repo/db
	svc := services.NewPaintingService(db, paintingRepoShim{})
	h := handlers.New(svc)

	auth := middleware.JWTAuth([]byte(cfg.JWT.Secret))
	readCache := middleware.ClientCache(cfg.ClientCachePages)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api/v1.0"
	{
		api.GET("/paintings", readCache, h.ListPaintings)
		api.GET("/paintings/:id", readCache, h.GetPainting)

		api.POST("/paintings", auth, h.CreatePainting)
		api.PUT("/paintings/:id", auth, h.UpdatePainting)
		api.DELETE("/paintings/:id", auth, h.DeletePainting)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
