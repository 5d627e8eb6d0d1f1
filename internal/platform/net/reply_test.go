package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "veritas/internal/platform/errors"
	pnet "veritas/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"label": "real"}, "req-1")

	if status != http.StatusOK {
		t.Fatalf("status %d want %d", status, http.StatusOK)
	}
	if w.StatusCode != http.StatusOK || w.Status != http.StatusText(http.StatusOK) {
		t.Fatalf("wire status mismatch: %+v", w)
	}
	if w.RequestID != "req-1" {
		t.Fatalf("req id %q", w.RequestID)
	}
	if got := w.Data.(map[string]any)["label"]; got != "real" {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestError_NilFallsBackToOK(t *testing.T) {
	status, w := pnet.Error(nil, "req-4")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Error != "" {
		t.Fatalf("unexpected: %d %+v", status, w)
	}
}

func TestError_ValidationCarriesField(t *testing.T) {
	err := perr.WithField(perr.New(perr.ErrorCodeValidation, "text must not be blank"), "text")
	status, w := pnet.Error(err, "req-5")

	if status != http.StatusBadRequest || w.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d wire %d", status, w.StatusCode)
	}
	if w.Code != perr.ErrorCodeValidation || w.Field != "text" || w.Error != "text must not be blank" {
		t.Fatalf("wire mismatch: %+v", w)
	}
	if w.Data != nil {
		t.Fatalf("error wire should carry no data: %+v", w.Data)
	}
}

func TestError_ForeignErrorIs500(t *testing.T) {
	status, w := pnet.Error(errors.New("boom"), "")
	if status != http.StatusInternalServerError || w.Code != perr.ErrorCodeUnknown || w.Error != "boom" {
		t.Fatalf("unexpected: %d %+v", status, w)
	}
}
