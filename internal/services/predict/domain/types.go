// Package domain holds the prediction request and result shapes
package domain

import (
	"context"

	"veritas/internal/core/inference"
)

// EmptyInputMessage is shown when the submitted text is empty or whitespace
const EmptyInputMessage = "Please enter some news text to check."

// Input is the JSON body of a predict call
type Input struct {
	Text string `json:"text" validate:"notblank" example:"The Fed raised interest rates by 0.25% on Wednesday."`
}

// Result is the public form of one prediction
type Result struct {
	ID        string  `json:"id" example:"0b8f3c1e-1f6c-4bb1-9a35-7cf0b0a9e8d1"`
	Label     int     `json:"label" example:"0"`
	LabelName string  `json:"label_name" example:"real"`
	ProbReal  float64 `json:"prob_real" example:"0.8731"`
	ProbFake  float64 `json:"prob_fake" example:"0.1269"`
	Cleaned   string  `json:"cleaned" example:"the fed raised interest rates by on wednesday"`
	ModelID   string  `json:"model_id" example:"demo-calibrated-lr-2026.10"`
}

// IsFake reports whether the fake label won
func (r Result) IsFake() bool { return r.LabelName == "fake" }

// NewResult builds the public form of p under id
func NewResult(id string, p inference.Prediction) Result {
	return Result{
		ID:        id,
		Label:     p.Label,
		LabelName: p.LabelName(),
		ProbReal:  p.ProbReal(),
		ProbFake:  p.ProbFake(),
		Cleaned:   p.Cleaned,
		ModelID:   p.ModelID,
	}
}

// PredictorPort classifies raw article text. The surface the text came
// through is read from ctx.
type PredictorPort interface {
	Predict(ctx context.Context, raw string) (Result, error)
}
