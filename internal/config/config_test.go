package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fdlab/internal/fdiff"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Target != "sin" {
		t.Errorf("expected target sin, got %s", cfg.Target)
	}
	if cfg.Epsilon <= 0 {
		t.Error("epsilon should be positive")
	}
	if cfg.MinExp >= cfg.MaxExp {
		t.Error("min_exp should be below max_exp")
	}
	if cfg.Params() != fdiff.DefaultParams() {
		t.Errorf("default config params %+v differ from fdiff defaults", cfg.Params())
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := "target: exp\nx0: 0.5\nnum_points: 20\nplot:\n  height: 8\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Target != "exp" || cfg.X0 != 0.5 || cfg.NumPoints != 20 || cfg.Plot.Height != 8 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.MinExp != fdiff.DefaultMinExp || cfg.Plot.Width != DefaultPlotWidth {
		t.Error("missing keys should keep defaults")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	data := "target = \"cos\"\nepsilon = 1e-10\nmin_exp = -10\nmax_exp = -2\n\n[plot]\nwidth = 50\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Target != "cos" || cfg.Epsilon != 1e-10 || cfg.MinExp != -10 || cfg.MaxExp != -2 || cfg.Plot.Width != 50 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.NumPoints != fdiff.DefaultNumPoints {
		t.Error("missing keys should keep defaults")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"run.yaml", "run.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := GetPreset("wide")
			if err := Save(path, cfg); err != nil {
				t.Fatalf("save failed: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			if *loaded != *cfg {
				t.Errorf("round trip mismatch: %+v vs %+v", loaded, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	target, p, err := cfg.Resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if target.Name != "sin" || p.Range.NumPoints != fdiff.DefaultNumPoints {
		t.Errorf("unexpected resolve result %s %+v", target.Name, p)
	}

	cfg.MinExp, cfg.MaxExp = -2, -4
	if _, _, err := cfg.Resolve(); !errors.Is(err, fdiff.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Target = "tan"
	if _, _, err := cfg.Resolve(); err == nil {
		t.Error("expected error for unknown target")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("textbook")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.MinExp != -16 || cfg.MaxExp != -1 || cfg.NumPoints != 50 {
		t.Errorf("unexpected textbook preset %+v", cfg)
	}

	cfg.NumPoints = 3
	if Presets["textbook"].NumPoints != 50 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsResolve(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			target, p, err := GetPreset(name).Resolve()
			if err != nil {
				t.Fatalf("preset does not resolve: %v", err)
			}
			_, err = fdiff.Analyze(target, p)
			if name == "cubic-origin" {
				if !errors.Is(err, fdiff.ErrDegenerateInput) {
					t.Errorf("expected ErrDegenerateInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("analyze failed: %v", err)
			}
		})
	}
}
