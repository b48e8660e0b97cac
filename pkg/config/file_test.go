package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileMissing(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("NewFile on missing file: %v", err)
	}

	if f.AllowNonRootAccess() {
		t.Error("missing file must default to allowNonRootAccess=false")
	}
	if len(f.BudgetOverrides()) != 0 {
		t.Error("missing file must have no budget overrides")
	}
}

func TestFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile on empty file: %v", err)
	}
	if f.AllowNonRootAccess() {
		t.Error("empty file must default to allowNonRootAccess=false")
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}
	f.SetAllowNonRootAccess(true)
	f.c.BudgetOverrides = []BudgetOverride{
		{Clock: 148500000, PPM: 2500},
		{Clock: 74250000, PPM: 0},
	}
	if err := f.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	g, err := NewFile(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !g.AllowNonRootAccess() {
		t.Error("allowNonRootAccess lost in round trip")
	}

	ppm, ok := g.BudgetOverrideFor(148500000)
	if !ok || ppm != 2500 {
		t.Errorf("BudgetOverrideFor(148500000) = %d, %v; want 2500, true", ppm, ok)
	}
	// A zero override is still an override.
	ppm, ok = g.BudgetOverrideFor(74250000)
	if !ok || ppm != 0 {
		t.Errorf("BudgetOverrideFor(74250000) = %d, %v; want 0, true", ppm, ok)
	}
	if _, ok := g.BudgetOverrideFor(74250001); ok {
		t.Error("BudgetOverrideFor must match by exact clock")
	}
}
