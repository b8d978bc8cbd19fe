package httpserver

import (
	"fmt"
	"net/http"

	"quill-server/internal/config"
	"quill-server/internal/infrastructure"
	middleware "quill-server/internal/interfaces/httpserver/middlewares"
	chatrequests "quill-server/internal/interfaces/httpserver/requests/chat"
	"quill-server/internal/interfaces/httpserver/routes/pages"
	v1 "quill-server/internal/interfaces/httpserver/routes/v1"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServer struct {
	engine     *gin.Engine
	infra      *infrastructure.Infrastructure
	pagesRoute *pages.PagesRoute
	v1Route    *v1.V1Route
	config     *config.Config
}

func NewHttpServer(
	pagesRoute *pages.PagesRoute,
	v1Route *v1.V1Route,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := HTTPServer{
		gin.New(),
		infra,
		pagesRoute,
		v1Route,
		cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.SetHTMLTemplate(newTemplates())

	if err := chatrequests.RegisterValidations(); err != nil {
		infra.Logger.Warn().Err(err).Msg("failed to register request validations")
	}

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &server
}

func (httpServer *HTTPServer) Run() error {
	root := httpServer.engine.Group("/")

	httpServer.pagesRoute.RegisterRouter(root)
	httpServer.v1Route.RegisterRouter(root)

	if err := httpServer.engine.Run(fmt.Sprintf(":%d", httpServer.config.HTTPPort)); err != nil {
		return err
	}
	return nil
}
