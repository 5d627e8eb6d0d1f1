package raw

import "testing"

func TestGet(t *testing.T) {
	c := New().Prefix("VT_RAW_").Prefix("LOG_")
	t.Setenv("VT_RAW_LOG_FORMAT", "  json ")

	if got := c.Get("FORMAT", "console"); got != "json" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("LEVEL", "info"); got != "info" {
		t.Fatalf("default = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("VT_RAW_B_")
	cases := map[string]bool{"1": true, "TRUE": true, "yes": true, "On": true, "0": false, "nope": false}
	for v, want := range cases {
		t.Setenv("VT_RAW_B_CALLER", v)
		if got := c.GetBool("CALLER", !want); got != want {
			t.Errorf("GetBool(%q) = %v", v, got)
		}
	}
	if !c.GetBool("UNSET", true) {
		t.Fatal("unset must yield default")
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("VT_RAW_I_")
	cases := map[string]int{"10": 10, "0": 0, "-3": 7, "3x": 7, "": 7}
	for v, want := range cases {
		t.Setenv("VT_RAW_I_SAMPLE_EVERY", v)
		if got := c.GetInt("SAMPLE_EVERY", 7); got != want {
			t.Errorf("GetInt(%q) = %d, want %d", v, got, want)
		}
	}
}
