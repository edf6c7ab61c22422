package router

import (
	"fmt"
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/creditscore/internal/config"
	"github.com/polkiloo/creditscore/internal/metrics"
	"github.com/polkiloo/creditscore/internal/server/http/handlers"
	"github.com/polkiloo/creditscore/internal/server/http/middleware"
	"github.com/polkiloo/creditscore/internal/server/http/views"
)

// promhttp compresses the exposition itself.
const metricsPath = "/metrics"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CreditFacade, logger *slog.Logger, cfg *config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{metricsPath})))

	homeHandler := handlers.NewHomeHandler(facade)
	authHandler := handlers.NewAuthHandler(facade)
	profileHandler := handlers.NewProfileHandler(facade)
	reportHandler := handlers.NewReportHandler(facade)
	predictHandler := handlers.NewPredictHandler(facade)

	engine.GET("/healthz", homeHandler.Health)
	engine.GET(metricsPath, gin.WrapH(metrics.Handler()))

	site := engine.Group("")
	site.Use(middleware.LoadSession(facade))
	site.Use(middleware.TouchLastSeen(facade, logger))

	throttle := middleware.NewLoginThrottle(cfg.LoginRateLimit, cfg.LoginRateBurst, logger)
	site.GET("/login", authHandler.LoginPage)
	site.POST("/login", throttle.Middleware(), authHandler.Login)
	site.GET("/logout", authHandler.Logout)
	site.GET("/register", authHandler.RegisterPage)
	site.POST("/register", authHandler.Register)

	private := site.Group("")
	private.Use(middleware.LoginRequired())
	private.GET("/", homeHandler.Index)
	private.GET("/index", homeHandler.Index)
	private.GET("/user/:username", profileHandler.Show)
	private.GET("/edit_profile", profileHandler.EditPage)
	private.POST("/edit_profile", profileHandler.Edit)
	private.GET("/report_form", reportHandler.FormPage)
	private.POST("/report_form", reportHandler.SubmitForm)
	private.GET("/report", reportHandler.Show)
	private.POST("/report", reportHandler.Show)
	private.GET("/predict", predictHandler.FormPage)
	private.POST("/predict", predictHandler.Predict)

	return engine, nil
}
