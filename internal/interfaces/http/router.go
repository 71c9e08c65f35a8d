package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/praxisgrc/praxis/internal/application/dto"
	"github.com/praxisgrc/praxis/internal/config"
	"github.com/praxisgrc/praxis/internal/infrastructure/monitoring"
	"github.com/praxisgrc/praxis/internal/infrastructure/ratelimit"
	"github.com/praxisgrc/praxis/internal/interfaces/http/handlers"
	"github.com/praxisgrc/praxis/internal/interfaces/http/middleware"
	"github.com/praxisgrc/praxis/pkg/constants"
	"github.com/praxisgrc/praxis/pkg/errors"
	"github.com/praxisgrc/praxis/pkg/logger"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator
// engine. Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("analysis_type", func(fl validator.FieldLevel) bool {
				return constants.IsValidAnalysisType(fl.Field().String())
			})
		}
	})
}

// Router wires the HTTP surface of the analytics service.
type Router struct {
	engine                *gin.Engine
	config                *config.Config
	logger                logger.Logger
	tracer                trace.Tracer
	metrics               *monitoring.Metrics
	limiter               *ratelimit.RedisRateLimiter
	healthHandler         *handlers.HealthHandler
	analyticsHandler      *handlers.AnalyticsHandler
	classificationHandler *handlers.ClassificationHandler
	server                *http.Server
}

// NewRouter creates the router with all handlers attached.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	tracer trace.Tracer,
	metrics *monitoring.Metrics,
	limiter *ratelimit.RedisRateLimiter,
	healthHandler *handlers.HealthHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	classificationHandler *handlers.ClassificationHandler,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	RegisterValidators()

	return &Router{
		engine:                gin.New(),
		config:                cfg,
		logger:                log,
		tracer:                tracer,
		metrics:               metrics,
		limiter:               limiter,
		healthHandler:         healthHandler,
		analyticsHandler:      analyticsHandler,
		classificationHandler: classificationHandler,
	}
}

// SetupRoutes registers middleware and routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestContext())
	r.engine.Use(middleware.AccessLog(r.logger))
	if r.tracer != nil {
		r.engine.Use(middleware.Observability(r.tracer, r.metrics))
	}

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.engine.GET("/health/live", r.healthHandler.Liveness)
	r.engine.GET("/health/ready", r.healthHandler.Readiness)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if r.config.Server.PprofEnabled {
		pprof.Register(r.engine)
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.RequireTenantScope(&r.config.Auth, r.logger))
	if r.config.RateLimit.Enabled && r.limiter != nil {
		v1.Use(middleware.RateLimit(r.limiter))
	}
	{
		v1.POST("/analytics/run", r.analyticsHandler.Run)

		risk := v1.Group("/risk")
		{
			risk.POST("/classify", r.classificationHandler.Classify)
			risk.GET("/matrix/:tenant_id", r.classificationHandler.Matrix)
		}
	}

	r.engine.NoRoute(func(c *gin.Context) {
		err := errors.ErrNotFound("route")
		c.JSON(errors.HTTPStatusOf(err), dto.NewErrorEnvelope(err, c.GetString(string(constants.ContextKeyRequestID))))
	})
}

// Start runs the HTTP server until Stop is called or the listener fails.
func (r *Router) Start() error {
	r.SetupRoutes()

	addr := r.config.Server.Addr()
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    r.config.Server.ReadTimeoutDuration(),
		WriteTimeout:   r.config.Server.WriteTimeoutDuration(),
		MaxHeaderBytes: 1 << 20,
	}

	r.logger.Info(context.Background(), "starting HTTP server", logger.Fields{"address": addr})

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the HTTP server down, draining in-flight requests.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	r.logger.Info(ctx, "stopping HTTP server")
	return r.server.Shutdown(ctx)
}

// Engine exposes the underlying gin engine for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
