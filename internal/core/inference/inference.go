// Package inference runs the clean, vectorize, classify sequence over a
// loaded artifact bundle
package inference

import (
	"fmt"

	"veritas/internal/core/artifact"
	"veritas/internal/core/model"
	"veritas/internal/core/normalize"
)

// Prediction is the outcome of one inference call
type Prediction struct {
	Label   int
	Proba   [2]float64
	Cleaned string
	ModelID string
}

// LabelName returns "real" or "fake"
func (p Prediction) LabelName() string { return model.LabelName(p.Label) }

// ProbReal returns the probability of the real class
func (p Prediction) ProbReal() float64 { return p.Proba[model.LabelReal] }

// ProbFake returns the probability of the fake class
func (p Prediction) ProbFake() float64 { return p.Proba[model.LabelFake] }

// IsFake reports whether the fake label was predicted
func (p Prediction) IsFake() bool { return p.Label == model.LabelFake }

// Engine is safe for concurrent use, it only reads the bundle
type Engine struct {
	norm   *normalize.Normalizer
	bundle *artifact.Bundle
}

// New returns an engine over b
func New(b *artifact.Bundle) (*Engine, error) {
	if b == nil || b.Vectorizer == nil || b.Classifier == nil {
		return nil, fmt.Errorf("inference: nil artifact bundle")
	}
	return &Engine{norm: normalize.New(), bundle: b}, nil
}

// Bundle exposes the loaded artifacts
func (e *Engine) Bundle() *artifact.Bundle { return e.bundle }

// Predict cleans raw and classifies it
func (e *Engine) Predict(raw string) (Prediction, error) {
	return e.PredictCleaned(e.norm.Normalize(raw))
}

// PredictCleaned classifies text that is already normalized
func (e *Engine) PredictCleaned(cleaned string) (Prediction, error) {
	x := e.bundle.Vectorizer.Transform(cleaned)
	proba, err := e.bundle.Classifier.PredictProba(x)
	if err != nil {
		return Prediction{}, fmt.Errorf("inference: %w", err)
	}
	return Prediction{
		Label:   model.Argmax(proba),
		Proba:   proba,
		Cleaned: cleaned,
		ModelID: e.bundle.ModelID(),
	}, nil
}
