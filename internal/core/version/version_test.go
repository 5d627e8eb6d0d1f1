package version

import "testing"

func TestInfoDefaults(t *testing.T) {
	bi := Info()
	if bi.Service != "veritas-api" {
		t.Fatalf("Service = %q", bi.Service)
	}
	if bi.Version != "dev" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("unexpected defaults: %+v", bi)
	}
	if For("veritas-classify").Service != "veritas-classify" {
		t.Fatalf("For did not carry the service name")
	}
}
