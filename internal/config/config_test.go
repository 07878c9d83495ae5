package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 450 {
		t.Errorf("expected height 450, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Camera defaults
	if cfg.Camera.Distance != 5 || cfg.Camera.Yaw != 45 || cfg.Camera.Pitch != 30 {
		t.Errorf("unexpected camera orbit %+v", cfg.Camera)
	}
	if cfg.Camera.MinDistance != 2 || cfg.Camera.MaxDistance != 10 {
		t.Errorf("unexpected camera distance range [%g, %g]", cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	}
	if cfg.Camera.Sensitivity != 0.2 {
		t.Errorf("expected sensitivity 0.2, got %g", cfg.Camera.Sensitivity)
	}

	// Scene defaults
	if cfg.Scene.LightPosition != [3]float32{5, 5, 5} {
		t.Errorf("expected light at (5,5,5), got %v", cfg.Scene.LightPosition)
	}
	if cfg.Scene.OrientedBoxPicking {
		t.Error("expected oriented box picking to be off by default")
	}
	var boxes, tori int
	for _, s := range cfg.Scene.Shapes {
		switch s.Kind {
		case KindBox:
			boxes++
		case KindTorus:
			tori++
		}
	}
	if boxes != 3 || tori != 2 {
		t.Errorf("expected 3 boxes and 2 tori, got %d and %d", boxes, tori)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

camera:
  distance: 8
  sensitivity: 0.5

shaders:
  dir: /opt/shapelab

scene:
  oriented_box_picking: true
  shapes:
    - kind: torus
      name: Ring
      position: [1, 2, 3]
      outer: 2
      inner: 1
      color: [0.2, 0.4, 0.6]
      auto_rotate: true

logging:
  level: "debug"
  log_file: "shapelab.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Camera.Distance != 8 {
		t.Errorf("expected distance 8, got %g", cfg.Camera.Distance)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Camera.Yaw != 45 {
		t.Errorf("expected default yaw 45, got %g", cfg.Camera.Yaw)
	}

	if cfg.Shaders.Dir != "/opt/shapelab" {
		t.Errorf("expected shader dir /opt/shapelab, got %s", cfg.Shaders.Dir)
	}
	if cfg.Shaders.Vertex != "shaders/vertex.glsl" {
		t.Errorf("expected default vertex shader, got %s", cfg.Shaders.Vertex)
	}

	if !cfg.Scene.OrientedBoxPicking {
		t.Error("expected oriented box picking to be enabled")
	}
	if len(cfg.Scene.Shapes) != 1 {
		t.Fatalf("expected the file's shapes to replace the defaults, got %d shapes", len(cfg.Scene.Shapes))
	}
	ring := cfg.Scene.Shapes[0]
	if ring.Kind != KindTorus || ring.Name != "Ring" || ring.Outer != 2 || ring.Inner != 1 {
		t.Errorf("unexpected shape %+v", ring)
	}
	if ring.Color == nil || *ring.Color != [3]float32{0.2, 0.4, 0.6} {
		t.Errorf("unexpected shape color %v", ring.Color)
	}
	if !ring.AutoRotate {
		t.Error("expected auto rotate to be enabled")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "shapelab.log" {
		t.Errorf("expected log file 'shapelab.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   bool
		wantShape bool
	}{
		{
			name:   "default",
			mutate: func(*Config) {},
		},
		{
			name:      "unknown kind",
			mutate:    func(c *Config) { c.Scene.Shapes[0].Kind = "sphere" },
			wantErr:   true,
			wantShape: true,
		},
		{
			name:      "torus inner not below outer",
			mutate:    func(c *Config) { c.Scene.Shapes[3].Inner = 1.5 },
			wantErr:   true,
			wantShape: true,
		},
		{
			name:      "torus zero inner",
			mutate:    func(c *Config) { c.Scene.Shapes[3].Inner = 0 },
			wantErr:   true,
			wantShape: true,
		},
		{
			name:      "negative box size",
			mutate:    func(c *Config) { c.Scene.Shapes[0].Size = -1 },
			wantErr:   true,
			wantShape: true,
		},
		{
			name:   "zero box size falls back later",
			mutate: func(c *Config) { c.Scene.Shapes[0].Size = 0 },
		},
		{
			name:    "zero width",
			mutate:  func(c *Config) { c.Graphics.Width = 0 },
			wantErr: true,
		},
		{
			name:    "inverted distance range",
			mutate:  func(c *Config) { c.Camera.MaxDistance = 1 },
			wantErr: true,
		},
		{
			name:    "far before near",
			mutate:  func(c *Config) { c.Camera.Far = 0.05 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := errors.Is(err, ErrInvalidShape); got != tt.wantShape {
				t.Errorf("errors.Is(err, ErrInvalidShape) = %v, want %v", got, tt.wantShape)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.Yaw = 120
	cfg.Scene.Shapes = cfg.Scene.Shapes[:1]
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Camera.Yaw != 120 {
		t.Errorf("expected yaw 120, got %g", loaded.Camera.Yaw)
	}
	if len(loaded.Scene.Shapes) != 1 || loaded.Scene.Shapes[0].Name != "Voxel 1" {
		t.Errorf("unexpected shapes after reload: %+v", loaded.Scene.Shapes)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "shaders flag",
			setup: func() { *flagShaders = "/srv/shapelab" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Shaders.Dir != "/srv/shapelab" {
					t.Errorf("expected shader dir /srv/shapelab, got %s", cfg.Shaders.Dir)
				}
			},
			teardown: func() { *flagShaders = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestPrecedence(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 1024\n  height: 768\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagHeight = 600
	defer func() {
		*flagConfig = ""
		*flagHeight = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Graphics.Width != 1024 {
		t.Errorf("file should override default width, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 600 {
		t.Errorf("flag should override file height, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("default vsync should survive")
	}
}
