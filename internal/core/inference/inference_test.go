package inference_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"veritas/internal/core/artifact/artifacttest"
	"veritas/internal/core/inference"
	"veritas/internal/core/model"
)

func newEngine(t *testing.T) *inference.Engine {
	t.Helper()
	e, err := inference.New(artifacttest.Bundle(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestPredict_Headlines(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		in       string
		cleaned  string
		label    int
		probsFmt string
	}{
		{
			in:       "The Fed RAISED rates by 0.25% today!!!",
			cleaned:  "the fed raised rates by today",
			label:    model.LabelReal,
			probsFmt: "0.9796/0.0204",
		},
		{
			in:       "SHOCKING: Miracle cure EXPOSED as secret hoax! Share this!!!",
			cleaned:  "shocking miracle cure exposed as secret hoax share this",
			label:    model.LabelFake,
			probsFmt: "0.0001/0.9999",
		},
		{
			in:       "Officials said the government report, according to Reuters, showed 3% growth.",
			cleaned:  "officials said the government report according to reuters showed growth",
			label:    model.LabelReal,
			probsFmt: "0.9997/0.0003",
		},
	}
	for _, tc := range tests {
		p, err := e.Predict(tc.in)
		if err != nil {
			t.Fatalf("Predict(%q): %v", tc.in, err)
		}
		if p.Cleaned != tc.cleaned {
			t.Fatalf("Cleaned = %q, want %q", p.Cleaned, tc.cleaned)
		}
		if p.Label != tc.label {
			t.Fatalf("Label(%q) = %d, want %d", tc.in, p.Label, tc.label)
		}
		if got := fmt.Sprintf("%.4f/%.4f", p.ProbReal(), p.ProbFake()); got != tc.probsFmt {
			t.Fatalf("probs(%q) = %s, want %s", tc.in, got, tc.probsFmt)
		}
		if p.ModelID != artifacttest.ModelID {
			t.Fatalf("ModelID = %q", p.ModelID)
		}
	}
}

func TestPredict_ProbabilityInvariants(t *testing.T) {
	e := newEngine(t)
	for _, in := range []string{"", "zzz qqq", "fed", "hoax hoax hoax hoax", "you wont believe this viral truth"} {
		p, err := e.Predict(in)
		if err != nil {
			t.Fatalf("Predict(%q): %v", in, err)
		}
		if p.Label != model.LabelReal && p.Label != model.LabelFake {
			t.Fatalf("label out of range: %d", p.Label)
		}
		for _, v := range p.Proba {
			if v < 0 || v > 1 {
				t.Fatalf("probability out of range: %v", p.Proba)
			}
		}
		if math.Abs(p.Proba[0]+p.Proba[1]-1) > 1e-6 {
			t.Fatalf("probabilities sum to %v", p.Proba[0]+p.Proba[1])
		}
		if p.IsFake() != (p.LabelName() == "fake") {
			t.Fatalf("label helpers disagree: %+v", p)
		}
	}
}

func TestPredict_EmptyCleanedUsesIntercept(t *testing.T) {
	e := newEngine(t)
	empty, err := e.PredictCleaned("")
	if err != nil {
		t.Fatal(err)
	}
	unknown, err := e.Predict("zzz qqq")
	if err != nil {
		t.Fatal(err)
	}
	if empty.Proba != unknown.Proba {
		t.Fatalf("zero vectors should score alike: %v vs %v", empty.Proba, unknown.Proba)
	}
}

func TestPredict_DeterministicAndConcurrent(t *testing.T) {
	e := newEngine(t)
	const in = "Officials said the secret report was a hoax, according to Reuters."
	want, err := e.Predict(in)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Predict(in)
			if err != nil {
				errs <- err
				return
			}
			if got != want {
				errs <- fmt.Errorf("got %+v, want %+v", got, want)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestNew_NilBundle(t *testing.T) {
	if _, err := inference.New(nil); err == nil {
		t.Fatalf("expected error for nil bundle")
	}
}
