package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test camera defaults
	if cfg.Camera.Eye != [3]float32{0, 100, 0} {
		t.Errorf("expected eye (0, 100, 0), got %v", cfg.Camera.Eye)
	}
	if cfg.Camera.Up != [3]float32{0, 0, 1} {
		t.Errorf("expected up (0, 0, 1), got %v", cfg.Camera.Up)
	}
	if cfg.Camera.FovYDegrees != 45 {
		t.Errorf("expected fovy 45, got %f", cfg.Camera.FovYDegrees)
	}
	if cfg.Camera.Sensitivity != 1 {
		t.Errorf("expected sensitivity 1, got %f", cfg.Camera.Sensitivity)
	}

	// Test scene defaults
	if cfg.Scene.TextureDir != "./textures" {
		t.Errorf("expected texture dir ./textures, got %s", cfg.Scene.TextureDir)
	}
	if cfg.Scene.Catalog != "" {
		t.Errorf("expected built-in catalog, got %s", cfg.Scene.Catalog)
	}
	if cfg.Scene.Shininess != 1000 {
		t.Errorf("expected shininess 1000, got %f", cfg.Scene.Shininess)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
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
  wireframe: true

camera:
  eye: [0, 0, 200]
  up: [0, 1, 0]
  fovy_degrees: 60
  sensitivity: 0.5

scene:
  texture_dir: "/opt/orrery/textures"
  catalog: "system.yaml"
  time_scale: 2.5
  skybox: false

logging:
  level: "debug"
  log_file: "orrery.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if !cfg.Graphics.Wireframe {
		t.Error("expected wireframe to be true")
	}
	if cfg.Camera.Eye != [3]float32{0, 0, 200} {
		t.Errorf("expected eye (0, 0, 200), got %v", cfg.Camera.Eye)
	}
	// Keys missing from the file keep their defaults.
	if cfg.Camera.Far != 1000 {
		t.Errorf("expected default far 1000, got %f", cfg.Camera.Far)
	}
	if cfg.Camera.Sensitivity != 0.5 {
		t.Errorf("expected sensitivity 0.5, got %f", cfg.Camera.Sensitivity)
	}
	if cfg.Scene.TextureDir != "/opt/orrery/textures" {
		t.Errorf("unexpected texture dir %s", cfg.Scene.TextureDir)
	}
	if cfg.Scene.TimeScale != 2.5 {
		t.Errorf("expected time scale 2.5, got %f", cfg.Scene.TimeScale)
	}
	if cfg.Scene.Skybox {
		t.Error("expected skybox to be false")
	}
	if cfg.Logging.LogFile != "orrery.log" {
		t.Errorf("expected log file 'orrery.log', got %s", cfg.Logging.LogFile)
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

func TestLoadFromFileUnknownKey(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "typo.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  sensitivty: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error for unknown key, got nil")
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should load, got %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected defaults to survive, got width %d", cfg.Graphics.Width)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"near not positive", func(c *Config) { c.Camera.Near = 0 }},
		{"far before near", func(c *Config) { c.Camera.Far = 0.5 }},
		{"fov too wide", func(c *Config) { c.Camera.FovYDegrees = 180 }},
		{"zero sensitivity", func(c *Config) { c.Camera.Sensitivity = 0 }},
		{"negative time scale", func(c *Config) { c.Scene.TimeScale = -1 }},
		{"ambient above one", func(c *Config) { c.Scene.Ambient = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
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
	t.Setenv("HOME", tmpDir)

	// No config file exists - should return empty
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
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
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
			verify: func(cfg *Config) {
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
			name:  "sensitivity flag",
			setup: func() { *flagSensitivity = 2.5 },
			verify: func(cfg *Config) {
				if cfg.Camera.Sensitivity != 2.5 {
					t.Errorf("expected sensitivity 2.5, got %f", cfg.Camera.Sensitivity)
				}
			},
			teardown: func() { *flagSensitivity = 0 },
		},
		{
			name: "scene flags",
			setup: func() {
				*flagTextures = "/tmp/tex"
				*flagCatalog = "/tmp/system.yaml"
			},
			verify: func(cfg *Config) {
				if cfg.Scene.TextureDir != "/tmp/tex" {
					t.Errorf("expected texture dir /tmp/tex, got %s", cfg.Scene.TextureDir)
				}
				if cfg.Scene.Catalog != "/tmp/system.yaml" {
					t.Errorf("expected catalog /tmp/system.yaml, got %s", cfg.Scene.Catalog)
				}
			},
			teardown: func() {
				*flagTextures = ""
				*flagCatalog = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.Sensitivity = 0.75
	cfg.Scene.Catalog = "custom.yaml"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Camera.Sensitivity != 0.75 || loaded.Scene.Catalog != "custom.yaml" {
		t.Errorf("saved values lost: %+v", loaded)
	}
}
