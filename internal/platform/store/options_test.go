package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpen_AppliesOptions(t *testing.T) {
	var buf bytes.Buffer
	pg := &pingRunner{}
	ch := &fakeCH{}

	s, err := Open(context.Background(), Config{}, WithLogger(zerolog.New(&buf)), WithPG(pg), WithCH(ch))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != pg || s.CH != ch || !s.Enabled() {
		t.Fatalf("seams not installed: %+v", s)
	}
	s.Log.Info().Msg("journal ready")
	if !bytes.Contains(buf.Bytes(), []byte("journal ready")) {
		t.Fatalf("logger not installed, got %q", buf.String())
	}
}

func TestOpen_OptionError(t *testing.T) {
	bad := errors.New("bad option")
	_, err := Open(context.Background(), Config{}, func(*Store) error { return bad })
	if !errors.Is(err, bad) {
		t.Fatalf("err = %v", err)
	}
}
