package store

import (
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestReadMissingKey(t *testing.T) {
	p := load(t)
	if _, ok := p.Read(KeyEvents); ok {
		t.Fatalf("expected absent key")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	p := load(t)
	if err := p.Write(KeyTheme, []byte("dark")); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, ok := p.Read(KeyTheme)
	if !ok {
		t.Fatalf("expected key present")
	}
	if string(raw) != "dark" {
		t.Fatalf("expected dark, got %q", raw)
	}
}

func TestEraseMissingKeyIsNoOp(t *testing.T) {
	p := load(t)
	if err := p.Erase(KeyTodos); err != nil {
		t.Fatalf("erase absent key: %v", err)
	}
}

func TestDecodeOrAbsent(t *testing.T) {
	p := load(t)
	got := DecodeOr(p, KeyTodos, []string{})
	if len(got) != 0 {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestDecodeOrCorrupt(t *testing.T) {
	p := load(t)
	if err := p.Write(KeyTodos, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := DecodeOr(p, KeyTodos, []string{"fallback"})
	if len(got) != 1 || got[0] != "fallback" {
		t.Fatalf("expected fallback on corrupt data, got %v", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := load(t)
	want := map[string]int{"a": 1, "b": 2}
	if err := Encode(p, KeyStudy, want); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got := DecodeOr(p, KeyStudy, map[string]int{})
	if got["a"] != 1 || got["b"] != 2 {
		t.Fatalf("unexpected round trip value: %v", got)
	}
}
