// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Camera      CameraConfig      `yaml:"camera"`
	Scene       SceneConfig       `yaml:"scene"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// CameraConfig holds the starting camera pose, lens and trackball settings.
type CameraConfig struct {
	Eye         [3]float32 `yaml:"eye"`
	At          [3]float32 `yaml:"at"`
	Up          [3]float32 `yaml:"up"`
	FovYDegrees float32    `yaml:"fovy_degrees"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// SceneConfig holds asset locations and simulation settings.
type SceneConfig struct {
	TextureDir string  `yaml:"texture_dir"`
	Catalog    string  `yaml:"catalog"` // empty uses the built-in solar system
	TimeScale  float32 `yaml:"time_scale"`
	Skybox     bool    `yaml:"skybox"`
	SkyTexture string  `yaml:"sky_texture"`
	Shininess  float32 `yaml:"shininess"`
	Ambient    float32 `yaml:"ambient"`
}

// ScreenshotsConfig holds screenshot output settings.
type ScreenshotsConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Wireframe:  false,
		},
		Camera: CameraConfig{
			Eye:         [3]float32{0, 100, 0},
			At:          [3]float32{0, 0, 0},
			Up:          [3]float32{0, 0, 1},
			FovYDegrees: 45,
			Near:        1,
			Far:         1000,
			Sensitivity: 1,
		},
		Scene: SceneConfig{
			TextureDir: "./textures",
			Catalog:    "",
			TimeScale:  1,
			Skybox:     true,
			SkyTexture: "stars",
			Shininess:  1000,
			Ambient:    0,
		},
		Screenshots: ScreenshotsConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
