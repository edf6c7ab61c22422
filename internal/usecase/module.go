package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/creditscore/internal/adapter/artifact"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewProfileUseCase,
	NewReportUseCase,
	NewPredictUseCase,
	NewImportUseCase,
	func(l *artifact.Loader) ArtifactLoader { return l },
)
