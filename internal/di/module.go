package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/creditscore/internal/adapter/artifact"
	"github.com/polkiloo/creditscore/internal/app"
	"github.com/polkiloo/creditscore/internal/config"
	"github.com/polkiloo/creditscore/internal/logger"
	"github.com/polkiloo/creditscore/internal/pkg/auth"
	"github.com/polkiloo/creditscore/internal/server/http/handlers"
	"github.com/polkiloo/creditscore/internal/server/http/router"
	"github.com/polkiloo/creditscore/internal/storage/postgres"
	"github.com/polkiloo/creditscore/internal/usecase"
)

// Module assembles the web application graph. Extra options are appended last.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		artifact.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		fx.Provide(func(f *app.CreditFacade) handlers.CreditFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
