package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"salesops/internal/prefs"
)

func TestMemoryRoundTrip(t *testing.T) {
	s := prefs.NewMemory()

	if _, ok := s.Get("cols"); ok {
		t.Fatalf("expected miss on empty store")
	}
	if err := s.Set("cols", []byte(`["a","b"]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok := s.Get("cols")
	if !ok || string(got) != `["a","b"]` {
		t.Fatalf("get: ok=%v got=%q", ok, got)
	}
	if err := s.Delete("cols"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.Get("cols"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestMemoryCopiesPayload(t *testing.T) {
	s := prefs.NewMemory()
	buf := []byte("abc")
	_ = s.Set("k", buf)
	buf[0] = 'z'
	got, _ := s.Get("k")
	if string(got) != "abc" {
		t.Fatalf("stored payload aliased caller buffer: %q", got)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := prefs.NewFile(path)

	if err := s.Set("vehicles.columns", []byte(`["plate","route"]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	// a fresh store over the same path sees the value
	s2 := prefs.NewFile(path)
	got, ok := s2.Get("vehicles.columns")
	if !ok || string(got) != `["plate","route"]` {
		t.Fatalf("reload: ok=%v got=%q", ok, got)
	}

	if err := s2.Delete("vehicles.columns"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := prefs.NewFile(path).Get("vehicles.columns"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestFileCorruptContentReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s := prefs.NewFile(path)
	if _, ok := s.Get("anything"); ok {
		t.Fatalf("corrupt file must read as empty")
	}

	// and a write recovers the file
	if err := s.Set("k", []byte(`1`)); err != nil {
		t.Fatalf("set after corrupt: %v", err)
	}
	got, ok := s.Get("k")
	if !ok || string(got) != "1" {
		t.Fatalf("recover: ok=%v got=%q", ok, got)
	}
}

func TestFileMultipleKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := prefs.NewFile(path)
	_ = s.Set("a", []byte(`"x"`))
	_ = s.Set("b", []byte(`"y"`))

	a, _ := s.Get("a")
	b, _ := s.Get("b")
	if string(a) != `"x"` || string(b) != `"y"` {
		t.Fatalf("got a=%q b=%q", a, b)
	}
}
