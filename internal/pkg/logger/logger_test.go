package logger

import "testing"

func TestInitAndLevel(t *testing.T) {
	if err := Init("debug", "console"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if got := GetLevel().String(); got != "debug" {
		t.Fatalf("GetLevel() = %q, want %q", got, "debug")
	}

	if err := SetLevel("warn"); err != nil {
		t.Fatalf("SetLevel() error = %v", err)
	}
	if got := GetLevel().String(); got != "warn" {
		t.Fatalf("GetLevel() after SetLevel = %q, want %q", got, "warn")
	}

	if err := SetLevel("not-a-level"); err == nil {
		t.Fatal("SetLevel(invalid) expected error, got nil")
	}
}

func TestInitIsIdempotent(t *testing.T) {
	// Second Init must not reconfigure or fail; the once guard keeps the
	// first configuration.
	if err := Init("error", "json"); err != nil {
		t.Fatalf("second Init() error = %v", err)
	}
	if L() == nil {
		t.Fatal("L() returned nil after Init")
	}
}
