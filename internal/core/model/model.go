// Package model implements the binary text classifier: an ensemble of
// logistic regressions, each followed by a probability calibrator
package model

import (
	"fmt"
	"math"
	"sort"

	"veritas/internal/core/vectorize"
)

// Labels
const (
	LabelReal = 0
	LabelFake = 1
)

// LabelName returns the display name for a label
func LabelName(label int) string {
	switch label {
	case LabelReal:
		return "real"
	case LabelFake:
		return "fake"
	default:
		return "unknown"
	}
}

// Calibration methods
const (
	MethodSigmoid  = "sigmoid"
	MethodIsotonic = "isotonic"
	MethodNone     = "none"
)

// Calibrator maps a decision value to p(fake)
type Calibrator struct {
	// sigmoid: p = 1 / (1 + exp(A*df + B))
	A float64 `json:"a,omitempty"`
	B float64 `json:"b,omitempty"`

	// isotonic: piecewise linear over ascending X, clipped at both ends
	X []float64 `json:"x,omitempty"`
	Y []float64 `json:"y,omitempty"`
}

// Fold is one calibrated logistic regression of the ensemble
type Fold struct {
	Coef       []float64  `json:"coef"`
	Intercept  float64    `json:"intercept"`
	Calibrator Calibrator `json:"calibrator"`
}

// Params is the decoded classifier artifact body
type Params struct {
	Classes   []int  `json:"classes"`
	NFeatures int    `json:"n_features"`
	Method    string `json:"method"`
	Folds     []Fold `json:"calibrated"`
}

// Classifier is immutable after New and safe for concurrent use
type Classifier struct {
	p Params
}

// New validates p and builds a Classifier
func New(p Params) (*Classifier, error) {
	if len(p.Classes) != 2 || p.Classes[0] != LabelReal || p.Classes[1] != LabelFake {
		return nil, fmt.Errorf("model: classes must be [0 1], got %v", p.Classes)
	}
	if p.NFeatures <= 0 {
		return nil, fmt.Errorf("model: n_features must be positive, got %d", p.NFeatures)
	}
	if len(p.Folds) == 0 {
		return nil, fmt.Errorf("model: no calibrated classifiers")
	}
	switch p.Method {
	case "":
		p.Method = MethodSigmoid
	case MethodSigmoid, MethodIsotonic, MethodNone:
	default:
		return nil, fmt.Errorf("model: unsupported calibration method %q", p.Method)
	}
	for i, f := range p.Folds {
		if len(f.Coef) != p.NFeatures {
			return nil, fmt.Errorf("model: fold %d has %d coefficients, want %d", i, len(f.Coef), p.NFeatures)
		}
		if p.Method == MethodIsotonic {
			c := f.Calibrator
			if len(c.X) == 0 || len(c.X) != len(c.Y) {
				return nil, fmt.Errorf("model: fold %d isotonic thresholds malformed", i)
			}
			if !sort.Float64sAreSorted(c.X) {
				return nil, fmt.Errorf("model: fold %d isotonic thresholds not ascending", i)
			}
		}
	}
	return &Classifier{p: p}, nil
}

// NFeatures returns the expected input dimensionality
func (c *Classifier) NFeatures() int { return c.p.NFeatures }

// Method returns the calibration method
func (c *Classifier) Method() string { return c.p.Method }

// Folds returns the ensemble size
func (c *Classifier) Folds() int { return len(c.p.Folds) }

// DecisionFunction returns the raw logistic score of every fold
func (c *Classifier) DecisionFunction(x vectorize.Vector) ([]float64, error) {
	if x.Dim != c.p.NFeatures {
		return nil, fmt.Errorf("model: vector has %d features, want %d", x.Dim, c.p.NFeatures)
	}
	out := make([]float64, len(c.p.Folds))
	for i, f := range c.p.Folds {
		out[i] = x.Dot(f.Coef) + f.Intercept
	}
	return out, nil
}

// PredictProba returns [p(real), p(fake)], each in [0,1], summing to 1
func (c *Classifier) PredictProba(x vectorize.Vector) ([2]float64, error) {
	dfs, err := c.DecisionFunction(x)
	if err != nil {
		return [2]float64{}, err
	}
	var fake float64
	for i, df := range dfs {
		fake += c.calibrate(c.p.Folds[i].Calibrator, df)
	}
	fake = clip01(fake / float64(len(dfs)))
	return [2]float64{1 - fake, fake}, nil
}

// Predict returns the label with the highest probability, ties go to real
func (c *Classifier) Predict(x vectorize.Vector) (int, error) {
	p, err := c.PredictProba(x)
	if err != nil {
		return 0, err
	}
	return Argmax(p), nil
}

// Argmax picks the label for a probability pair, ties go to real
func Argmax(p [2]float64) int {
	if p[LabelFake] > p[LabelReal] {
		return LabelFake
	}
	return LabelReal
}

func (c *Classifier) calibrate(cal Calibrator, df float64) float64 {
	switch c.p.Method {
	case MethodIsotonic:
		return interp(df, cal.X, cal.Y)
	case MethodNone:
		return sigmoid(-df)
	default:
		return sigmoid(cal.A*df + cal.B)
	}
}

// sigmoid returns 1/(1+exp(z)) without overflow
func sigmoid(z float64) float64 {
	if z >= 0 {
		e := math.Exp(-z)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(z))
}

// interp is linear interpolation over ascending xs, clamped to the end values
func interp(x float64, xs, ys []float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return clip01(ys[0])
	}
	if x >= xs[n-1] {
		return clip01(ys[n-1])
	}
	i := sort.SearchFloat64s(xs, x)
	if xs[i] == x {
		return clip01(ys[i])
	}
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	return clip01(y0 + (y1-y0)*(x-x0)/(x1-x0))
}

func clip01(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 0.5
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}
