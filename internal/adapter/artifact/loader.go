package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
)

// Artifact file names inside the artifact directory.
const (
	ScalerFile              = "scaler.json"
	NumericalFeaturesFile   = "numerical_features.json"
	CategoricalFeaturesFile = "categorical_features.json"
	ModelFile               = "model.json"
)

// ErrInvalidArtifact marks artifacts that decode but are inconsistent.
var ErrInvalidArtifact = errors.New("invalid artifact")

// Bundle is the full set of artifacts needed for one prediction.
type Bundle struct {
	Scaler      *Scaler
	Numerical   []string
	Categorical []string
	Classifier  Classifier
}

// Width is the length of a full feature row.
func (b *Bundle) Width() int {
	return len(b.Numerical) + len(b.Categorical)
}

// Loader reads artifacts from a file system on every call.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates Loader over the given file system.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewDirLoader creates Loader reading from a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir))
}

// Load reads and validates all four artifacts.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	var b Bundle

	var scaler Scaler
	if err := l.decode(ctx, ScalerFile, &scaler); err != nil {
		return nil, err
	}
	if err := scaler.validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", ScalerFile, err)
	}
	b.Scaler = &scaler

	if err := l.decode(ctx, NumericalFeaturesFile, &b.Numerical); err != nil {
		return nil, err
	}
	if err := l.decode(ctx, CategoricalFeaturesFile, &b.Categorical); err != nil {
		return nil, err
	}
	if scaler.Width() != len(b.Numerical) {
		return nil, fmt.Errorf("load %s: %w: scaler fitted on %d features, %d numeric features declared",
			ScalerFile, ErrInvalidArtifact, scaler.Width(), len(b.Numerical))
	}

	var mf modelFile
	if err := l.decode(ctx, ModelFile, &mf); err != nil {
		return nil, err
	}
	classifier, err := mf.classifier(b.Width())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", ModelFile, err)
	}
	b.Classifier = classifier

	return &b, nil
}

func (l *Loader) decode(ctx context.Context, name string, dst any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}
