package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"day-planner/internal/middleware"
	"day-planner/internal/model"
	plannerHTTP "day-planner/internal/planner/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.requestsPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery(), mw.RequestID())
	if srv.mode != gin.ReleaseMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	api := srv.gin.Group("/api/v1")

	h := plannerHTTP.New(srv.l, srv.plannerUC, srv.defaultTimeZone)
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(context.Background(), "Planner routes registered at /api/v1/plans")
}
