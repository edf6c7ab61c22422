package artifact

import (
	"go.uber.org/fx"

	"github.com/polkiloo/creditscore/internal/config"
)

// Module provides the artifact loader configured with the artifact directory.
var Module = fx.Provide(newLoader)

func newLoader(cfg *config.Config) *Loader {
	return NewDirLoader(cfg.ArtifactDir)
}
