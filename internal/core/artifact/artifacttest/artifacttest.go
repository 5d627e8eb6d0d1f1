// Package artifacttest ships a tiny demo artifact pair for tests
package artifacttest

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing"

	"veritas/internal/core/artifact"
)

// VectorizerJSON is the demo TF-IDF vectorizer document
//
//go:embed testdata/tfidf_vectorizer.json
var VectorizerJSON []byte

// ModelJSON is the demo calibrated classifier document
//
//go:embed testdata/calibrated_lr_model.json
var ModelJSON []byte

// ModelID is the id carried by the demo classifier document
const ModelID = "demo-calibrated-lr-2026.10"

// Bundle decodes the demo pair or fails the test
func Bundle(tb testing.TB) *artifact.Bundle {
	tb.Helper()
	b, err := artifact.Decode(VectorizerJSON, ModelJSON)
	if err != nil {
		tb.Fatalf("decode demo artifacts: %v", err)
	}
	return b
}

// WriteFiles writes the demo pair into dir using the given compression and
// returns their paths
func WriteFiles(tb testing.TB, dir, compression string) artifact.Paths {
	tb.Helper()
	ext := map[string]string{
		artifact.CompressionGzip: ".gz",
		artifact.CompressionZstd: ".zst",
	}[compression]

	p := artifact.Paths{
		Vectorizer: filepath.Join(dir, artifact.DefaultVectorizerPath+ext),
		Model:      filepath.Join(dir, artifact.DefaultModelPath+ext),
	}
	write := func(path string, plain []byte) {
		data, err := artifact.Compress(plain, compression)
		if err != nil {
			tb.Fatalf("compress %s: %v", path, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			tb.Fatalf("write %s: %v", path, err)
		}
	}
	write(p.Vectorizer, VectorizerJSON)
	write(p.Model, ModelJSON)
	return p
}
