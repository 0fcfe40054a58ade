package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Storage keys for every persisted collection. The layout is the external
// schema of this application and must remain stable across versions.
const (
	KeyEvents    = "adm_events"
	KeyStudy     = "adm_study"
	KeySubjects  = "adm_subjects"
	KeyTodos     = "adm_todos"
	KeyDeadlines = "adm_deadlines"
	KeyTimeSlots = "adm_event_time_slots_v1"
	KeyTheme     = "adm_theme"
	KeyLang      = "adm_lang"
)

// Persistence is the raw key-value contract every repository builds on.
// Read never fails on a missing key; it reports absence instead.
type Persistence interface {
	Read(key string) ([]byte, bool)
	Write(key string, data []byte) error
	Erase(key string) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// flatTransform keeps every key as a file directly under the base path, so a
// storage key maps one-to-one onto a file name.
func flatTransform(string) []string { return []string{} }

func (p *persistence) Read(key string) ([]byte, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, false
	}
	return val, true
}

func (p *persistence) Write(key string, data []byte) error {
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// DecodeOr reads and JSON-decodes the value under key. Absent or corrupt
// data yields fallback, never an error; this is the single place the
// fail-soft policy lives.
func DecodeOr[T any](p Persistence, key string, fallback T) T {
	raw, ok := p.Read(key)
	if !ok || len(raw) == 0 {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
		return fallback
	}
	return v
}

// Encode JSON-encodes v and writes it under key.
func Encode(p Persistence, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return p.Write(key, data)
}
