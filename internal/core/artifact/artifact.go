// Package artifact loads the vectorizer and classifier artifacts from disk.
// Both files are JSON documents, optionally gzip or zstd compressed, and are
// read once per process.
package artifact

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"veritas/internal/core/model"
	"veritas/internal/core/vectorize"
)

// Default artifact locations, relative to the working directory
const (
	DefaultVectorizerPath = "tfidf_vectorizer.json"
	DefaultModelPath      = "calibrated_lr_model.json"
)

// Artifact formats understood by this package
const (
	FormatVectorizer = "tfidf-vectorizer"
	FormatModel      = "calibrated-logistic-regression"
	FormatVersion    = 1
)

// Compression names reported in FileInfo
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

var (
	// ErrIncompatible is returned when the vectorizer and classifier disagree on dimensionality
	ErrIncompatible = errors.New("artifact: vectorizer and classifier are incompatible")
	// ErrFormat is returned for a document with the wrong format or version
	ErrFormat = errors.New("artifact: unsupported format")
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Paths locates the two artifact files
type Paths struct {
	Vectorizer string
	Model      string
}

// DefaultPaths returns the fixed default locations
func DefaultPaths() Paths {
	return Paths{Vectorizer: DefaultVectorizerPath, Model: DefaultModelPath}
}

// FileInfo describes one decoded artifact file
type FileInfo struct {
	Path        string `json:"path,omitempty"`
	Format      string `json:"format"`
	Version     int    `json:"format_version"`
	ID          string `json:"id,omitempty"`
	SHA256      string `json:"sha256"`
	Bytes       int    `json:"bytes"`
	Compression string `json:"compression"`
}

// Info summarises a loaded bundle
type Info struct {
	ModelID    string   `json:"model_id"`
	Vectorizer FileInfo `json:"vectorizer"`
	Model      FileInfo `json:"model"`
	Features   int      `json:"features"`
	NGramRange [2]int   `json:"ngram_range"`
	Norm       string   `json:"norm"`
	Method     string   `json:"calibration"`
	Folds      int      `json:"folds"`
}

// Bundle holds the loaded, read-only inference handles
type Bundle struct {
	Vectorizer *vectorize.Vectorizer
	Classifier *model.Classifier
	info       Info
}

// Info returns descriptive metadata for the bundle
func (b *Bundle) Info() Info { return b.info }

// ModelID returns a stable identifier for the artifact pair
func (b *Bundle) ModelID() string { return b.info.ModelID }

type header struct {
	Format        string `json:"format"`
	FormatVersion int    `json:"format_version"`
	ID            string `json:"id,omitempty"`
}

type vectorizerDoc struct {
	header
	vectorize.Params
}

type modelDoc struct {
	header
	model.Params
}

// Load reads, decompresses and decodes both artifacts
func Load(p Paths) (*Bundle, error) {
	vraw, err := os.ReadFile(p.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("artifact: read vectorizer: %w", err)
	}
	mraw, err := os.ReadFile(p.Model)
	if err != nil {
		return nil, fmt.Errorf("artifact: read model: %w", err)
	}
	b, err := Decode(vraw, mraw)
	if err != nil {
		return nil, err
	}
	b.info.Vectorizer.Path = p.Vectorizer
	b.info.Model.Path = p.Model
	return b, nil
}

// Decode builds a bundle from the raw (possibly compressed) file contents
func Decode(vectorizerData, modelData []byte) (*Bundle, error) {
	var vd vectorizerDoc
	vinfo, err := decodeDoc(vectorizerData, FormatVectorizer, &vd, &vd.header)
	if err != nil {
		return nil, err
	}
	var md modelDoc
	minfo, err := decodeDoc(modelData, FormatModel, &md, &md.header)
	if err != nil {
		return nil, err
	}

	vec, err := vectorize.New(vd.Params)
	if err != nil {
		return nil, fmt.Errorf("artifact: vectorizer: %w", err)
	}
	clf, err := model.New(md.Params)
	if err != nil {
		return nil, fmt.Errorf("artifact: model: %w", err)
	}
	if vec.Dim() != clf.NFeatures() {
		return nil, fmt.Errorf("%w: vectorizer emits %d features, model expects %d", ErrIncompatible, vec.Dim(), clf.NFeatures())
	}

	vp := vec.Params()
	return &Bundle{
		Vectorizer: vec,
		Classifier: clf,
		info: Info{
			ModelID:    modelID(vinfo, minfo),
			Vectorizer: vinfo,
			Model:      minfo,
			Features:   vec.Dim(),
			NGramRange: vp.NGramRange,
			Norm:       string(vp.Norm),
			Method:     clf.Method(),
			Folds:      clf.Folds(),
		},
	}, nil
}

func decodeDoc(raw []byte, format string, doc any, h *header) (FileInfo, error) {
	sum := sha256.Sum256(raw)
	info := FileInfo{SHA256: hex.EncodeToString(sum[:]), Bytes: len(raw)}

	data, comp, err := Decompress(raw)
	if err != nil {
		return info, fmt.Errorf("artifact: %s: %w", format, err)
	}
	info.Compression = comp

	if err := json.Unmarshal(data, doc); err != nil {
		return info, fmt.Errorf("artifact: parse %s: %w", format, err)
	}
	if h.Format != format {
		return info, fmt.Errorf("%w: got %q, want %q", ErrFormat, h.Format, format)
	}
	if h.FormatVersion != FormatVersion {
		return info, fmt.Errorf("%w: %s format_version %d (want %d)", ErrFormat, format, h.FormatVersion, FormatVersion)
	}
	info.Format = h.Format
	info.Version = h.FormatVersion
	info.ID = h.ID
	return info, nil
}

// Decompress detects gzip or zstd framing and returns the plain bytes.
// Uncompressed input is returned as is.
func Decompress(raw []byte) ([]byte, string, error) {
	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, CompressionGzip, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, CompressionGzip, fmt.Errorf("gzip: %w", err)
		}
		return out, CompressionGzip, nil
	case bytes.HasPrefix(raw, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, CompressionZstd, fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, CompressionZstd, fmt.Errorf("zstd: %w", err)
		}
		return out, CompressionZstd, nil
	default:
		return raw, CompressionNone, nil
	}
}

// Compress encodes plain bytes with the named compression
func Compress(plain []byte, compression string) ([]byte, error) {
	switch compression {
	case CompressionNone, "":
		return plain, nil
	case CompressionGzip:
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(plain); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(plain, nil), nil
	default:
		return nil, fmt.Errorf("artifact: unknown compression %q", compression)
	}
}

func modelID(v, m FileInfo) string {
	if m.ID != "" {
		return m.ID
	}
	h := sha256.New()
	h.Write([]byte(v.SHA256))
	h.Write([]byte(m.SHA256))
	return "sha256:" + hex.EncodeToString(h.Sum(nil))[:16]
}

// Loader loads a bundle at most once and hands out the cached result
type Loader struct {
	paths Paths
	once  sync.Once
	b     *Bundle
	err   error
}

// NewLoader returns a loader for the given paths
func NewLoader(p Paths) *Loader { return &Loader{paths: p} }

// Paths returns the configured locations
func (l *Loader) Paths() Paths { return l.paths }

// Load returns the cached bundle, reading the files on the first call only
func (l *Loader) Load() (*Bundle, error) {
	l.once.Do(func() {
		l.b, l.err = Load(l.paths)
	})
	return l.b, l.err
}
