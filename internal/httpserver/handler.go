package httpserver

import (
	"context"

	analysishttp "procurement-srv/internal/analysis/delivery/http"
	analysisusecase "procurement-srv/internal/analysis/usecase"
	"procurement-srv/internal/middleware"
	vendorhttp "procurement-srv/internal/vendors/delivery/http"
	"procurement-srv/internal/vendors/repository/httpsource"
	"procurement-srv/internal/vendors/repository/memory"
	vendorusecase "procurement-srv/internal/vendors/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repositories
	source := httpsource.New(srv.l, srv.config.Datasets.Timeout)
	snapshot := memory.New()

	// Initialize usecases
	vendorUC := vendorusecase.New(source, snapshot, vendorusecase.Config{
		PrimaryURL:   srv.config.Datasets.PrimaryURL,
		OptionalURLs: srv.config.Datasets.OptionalURLs,
		Seed:         srv.config.Enrichment.Seed,
		TopLocations: srv.config.Analytics.TopLocations,
	}, srv.l)
	analysisUC := analysisusecase.New(vendorUC, srv.openAI, srv.redisClient, analysisusecase.Config{
		CacheTTL: srv.config.Analysis.CacheTTL,
	}, srv.l)

	// Initialize HTTP handlers
	vendorHandler := vendorhttp.New(srv.l, vendorUC, srv.discord)
	analysisHandler := analysishttp.New(srv.l, analysisUC, srv.discord)

	// Map routes
	root := srv.gin.Group("")
	vendorHandler.RegisterRoutes(root, mw)
	analysisHandler.RegisterRoutes(root, mw)

	// Warm the snapshot so the first request does not pay the load cost.
	go func() {
		ctx := context.Background()
		if _, err := vendorUC.Refresh(ctx); err != nil {
			srv.l.Errorf(ctx, "httpserver.mapHandlers: initial vendor load failed: %v", err)
		}
	}()

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(mw.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}

	// Add locale middleware to extract and set locale from request header
	srv.gin.Use(mw.Locale())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
