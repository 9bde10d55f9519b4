package configfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.File != "recipes.json" {
		t.Errorf("File = %q, want recipes.json", cfg.File)
	}
	if cfg.NoColor {
		t.Error("NoColor should default to false")
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	rbxDir := filepath.Join(t.TempDir(), ".recipebox")

	cfg := &Config{File: "meals.json", NoColor: true}
	if err := cfg.Save(rbxDir); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(rbxDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() returned nil config")
	}

	if loaded.File != cfg.File {
		t.Errorf("File = %q, want %q", loaded.File, cfg.File)
	}
	if loaded.NoColor != cfg.NoColor {
		t.Errorf("NoColor = %v, want %v", loaded.NoColor, cfg.NoColor)
	}
}

func TestLoadNonexistent(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() returned error for nonexistent config: %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() = %v, want nil for nonexistent config", cfg)
	}
}

func TestLoadFillsDefaultFile(t *testing.T) {
	rbxDir := t.TempDir()
	if err := os.WriteFile(ConfigPath(rbxDir), []byte("no-color: true\n"), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(rbxDir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.File != RecipesFileName {
		t.Errorf("File = %q, want %q", cfg.File, RecipesFileName)
	}
	if !cfg.NoColor {
		t.Error("NoColor = false, want true")
	}
}

func TestRecipesPath(t *testing.T) {
	rbxDir := filepath.Join("home", "user", ".recipebox")

	t.Run("relative resolves against rbx dir", func(t *testing.T) {
		cfg := &Config{File: "recipes.json"}
		got := cfg.RecipesPath(rbxDir)
		want := filepath.Join(rbxDir, "recipes.json")
		if got != want {
			t.Errorf("RecipesPath() = %q, want %q", got, want)
		}
	})

	t.Run("absolute path is honored", func(t *testing.T) {
		abs := filepath.Join(string(filepath.Separator), "data", "recipes.json")
		cfg := &Config{File: abs}
		if got := cfg.RecipesPath(rbxDir); got != abs {
			t.Errorf("RecipesPath() = %q, want %q", got, abs)
		}
	})

	t.Run("empty field resolves to default", func(t *testing.T) {
		cfg := &Config{}
		got := cfg.RecipesPath(rbxDir)
		want := filepath.Join(rbxDir, RecipesFileName)
		if got != want {
			t.Errorf("RecipesPath() = %q, want %q", got, want)
		}
	})
}
