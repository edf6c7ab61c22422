package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/polkiloo/creditscore/internal/adapter/artifact"
	"github.com/polkiloo/creditscore/internal/domain/model"
	"github.com/polkiloo/creditscore/internal/metrics"
)

// ArtifactLoader provides a freshly read model bundle.
type ArtifactLoader interface {
	Load(ctx context.Context) (*artifact.Bundle, error)
}

// FieldSource exposes submitted form values by name. url.Values satisfies it.
type FieldSource interface {
	Get(key string) string
}

// PredictUseCase scores a single customer profile with the trained model.
type PredictUseCase struct {
	loader ArtifactLoader
	logger *slog.Logger
}

// NewPredictUseCase constructs PredictUseCase.
func NewPredictUseCase(loader ArtifactLoader, logger *slog.Logger) *PredictUseCase {
	return &PredictUseCase{loader: loader, logger: logger}
}

// Form describes the numeric inputs and dropdown options of the current model.
func (u *PredictUseCase) Form(ctx context.Context) (*model.PredictionForm, error) {
	bundle, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	return &model.PredictionForm{
		Numerical:  bundle.Numerical,
		Categories: categoryOptions(bundle.Categorical),
	}, nil
}

// Predict builds the feature row from the form, scales it and classifies it.
// Malformed numbers become 0 and unknown selections are ignored.
func (u *PredictUseCase) Predict(ctx context.Context, form FieldSource) (*model.PredictionResult, error) {
	bundle, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	row := BuildFeatureRow(bundle.Numerical, bundle.Categorical, form)
	if err := bundle.Scaler.Transform(row.Numeric()); err != nil {
		return nil, fmt.Errorf("scale features: %w", err)
	}

	code, err := bundle.Classifier.Predict(row.Values())
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	prediction := model.NewPrediction(code)
	metrics.Scoring.PredictionsTotal.WithLabelValues(prediction.Label).Inc()
	u.logger.Debug("credit score predicted",
		slog.Int("code", code),
		slog.String("label", prediction.Label),
	)

	return &model.PredictionResult{Prediction: prediction, Numerical: bundle.Numerical}, nil
}

func (u *PredictUseCase) load(ctx context.Context) (*artifact.Bundle, error) {
	bundle, err := u.loader.Load(ctx)
	if err != nil {
		metrics.Scoring.ArtifactLoadFailures.Inc()
		return nil, fmt.Errorf("load artifacts: %w", err)
	}
	return bundle, nil
}

// BuildFeatureRow lays out one model input in artifact order.
func BuildFeatureRow(numerical, categorical []string, form FieldSource) *model.FeatureRow {
	row := model.NewFeatureRow(numerical, categorical)
	for _, name := range numerical {
		row.SetNumeric(name, parseNumber(form.Get(name)))
	}
	for _, category := range model.PredictionCategories {
		if value := strings.TrimSpace(form.Get(category)); value != "" {
			row.Activate(category + "_" + value)
		}
	}
	return row
}

func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func categoryOptions(categorical []string) []model.CategoryOptions {
	options := make([]model.CategoryOptions, 0, len(model.PredictionCategories))
	for _, category := range model.PredictionCategories {
		prefix := category + "_"
		opt := model.CategoryOptions{Name: category}
		for _, feature := range categorical {
			if value, ok := strings.CutPrefix(feature, prefix); ok && value != "" {
				opt.Values = append(opt.Values, value)
			}
		}
		options = append(options, opt)
	}
	return options
}
