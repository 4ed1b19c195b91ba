package assets

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/Faultbox/skinrender/internal/resources"
)

func TestLoadPriority(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{
		"font/meta/default.json": {Data: []byte("base")},
		"only/base.txt":          {Data: []byte("base-only")},
	})
	m.AddSource(fstest.MapFS{
		"font/meta/default.json": {Data: []byte("override")},
	})

	data, err := m.Load("font/meta/default.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "override" {
		t.Errorf("expected last source to win, got %q", data)
	}

	data, err = m.Load("only/base.txt")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "base-only" {
		t.Errorf("expected fallback to earlier source, got %q", data)
	}
}

func TestLoadMissing(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{})

	_, err := m.Load("font/meta/missing.json")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadCaches(t *testing.T) {
	m := NewManager()
	m.AddSource(fstest.MapFS{"a.txt": {Data: []byte("a")}})

	for i := 0; i < 3; i++ {
		if _, err := m.Load("a.txt"); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}

	hits, misses := m.cache.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("expected 2 hits / 1 miss, got %d / %d", hits, misses)
	}
}

func TestAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "font", "meta"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "font", "meta", "custom.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := NewDefaultManager(dir)
	if err != nil {
		t.Fatalf("NewDefaultManager failed: %v", err)
	}
	if _, err := m.Load("font/meta/custom.json"); err != nil {
		t.Errorf("expected custom file from dir, got %v", err)
	}
	if _, err := m.Load("font/meta/default.json"); err != nil {
		t.Errorf("expected bundled file, got %v", err)
	}
}

func TestAddDirMissing(t *testing.T) {
	if _, err := NewDefaultManager("/nonexistent/resources"); err == nil {
		t.Error("expected error for missing resource dir")
	}
}

func TestLoadImageBundled(t *testing.T) {
	m := NewManager()
	m.AddSource(resources.FS)

	img, err := m.LoadImage(resources.DefaultSkinPath)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 64, 64) {
		t.Errorf("expected 64x64 skin, got %v", img.Bounds())
	}
}

func TestToNRGBARebasesOrigin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 7))
	src.SetNRGBA(5, 5, color.NRGBA{R: 10, A: 255})

	out := ToNRGBA(src)
	if out.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("expected rebased bounds, got %v", out.Bounds())
	}
	if got := out.NRGBAAt(0, 0); got.R != 10 || got.A != 255 {
		t.Errorf("expected copied pixel, got %v", got)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Set("k", []byte("v"))
	c.Get("k")
	c.Clear()

	if _, ok := c.Get("k"); ok {
		t.Error("expected cache to be empty after Clear")
	}
	hits, misses := c.Stats()
	if hits != 0 || misses != 1 {
		t.Errorf("expected stats reset, got %d / %d", hits, misses)
	}
}
