package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	apperrors "kyc.gateman.io/application/appErrors"
	"kyc.gateman.io/infrastructure/env"
	"kyc.gateman.io/infrastructure/logger"
	middlewares "kyc.gateman.io/infrastructure/middleware"
	ratelimit "kyc.gateman.io/infrastructure/ratelimit"
	webRoutev1 "kyc.gateman.io/infrastructure/routes/ginRouter/web/v1"
	server_response "kyc.gateman.io/infrastructure/serverResponse"
	startup "kyc.gateman.io/infrastructure/startUp"
)

type ginServer struct {
	cfg      *env.Config
	services *startup.Services
}

func NewRouter(cfg *env.Config, services *startup.Services) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	server := gin.New()
	server.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		apperrors.FatalServerError(ctx, fmt.Errorf("panic: %v", recovered))
	}))
	server.Use(middlewares.ActivityLogMiddleware())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "User-Agent", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	server.Use(cors.New(corsConfig))
	server.MaxMultipartMemory = 8 << 20 // 8 MiB, larger parts spill to disk
	server.Use(middlewares.UserAgentMiddleware())

	server.GET("/ping", func(ctx *gin.Context) {
		server_response.Responder.Respond(ctx, http.StatusOK, "pong!")
	})
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routerV1 := server.Group("")
	routerV1.Use(ratelimit.TokenBucketPerIP(cfg.RateLimitPerMinute))
	routerV1.Use(middlewares.UploadLimitMiddleware(cfg.MaxUploadMB << 20))
	{
		webRoutev1.KycRouter(routerV1, services.KycController)
	}

	server.NoRoute(func(ctx *gin.Context) {
		apperrors.NotFoundError(ctx, fmt.Sprintf("%s %s does not exist", ctx.Request.Method, ctx.Request.URL))
	})
	return server
}

// Start serves until ctx is cancelled, then stops accepting requests and
// waits up to ShutdownTimeout for in-flight verification runs.
func (s *ginServer) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.cfg.Port),
		Handler:           NewRouter(s.cfg, s.services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server starting on PORT %s", s.cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	err := server.Shutdown(shutdownCtx)
	if drainErr := s.services.Pipeline.Drain(shutdownCtx); drainErr != nil {
		logger.Warning("kyc runs still in flight at shutdown", logger.LoggerOptions{
			Key:  "error",
			Data: drainErr.Error(),
		})
	}
	return err
}
