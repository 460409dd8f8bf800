package session

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/orbit"
	"github.com/Faultbox/orrery/internal/trackball"
	"github.com/Faultbox/orrery/pkg/math"
)

// CameraConfig converts the configured pose and lens to a camera config.
func CameraConfig(cfg config.CameraConfig) camera.Config {
	vec := func(v [3]float32) math.Vec3 { return math.Vec3{X: v[0], Y: v[1], Z: v[2]} }
	return camera.Config{
		Eye:  vec(cfg.Eye),
		At:   vec(cfg.At),
		Up:   vec(cfg.Up),
		FovY: cfg.FovYDegrees * math32.Pi / 180,
		Near: cfg.Near,
		Far:  cfg.Far,
	}
}

// LoadSystem loads the configured catalog, or the built-in solar system
// when none is set.
func LoadSystem(cfg config.SceneConfig) (*orbit.System, error) {
	if cfg.Catalog == "" {
		return orbit.DefaultCatalog()
	}
	sys, err := orbit.LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return sys, nil
}

// FromConfig assembles a context from the loaded configuration.
func FromConfig(cfg *config.Config, width, height int) (*Context, error) {
	sys, err := LoadSystem(cfg.Scene)
	if err != nil {
		return nil, err
	}
	cam := camera.New(CameraConfig(cfg.Camera), width, height)
	tb := trackball.New(cfg.Camera.Sensitivity)
	return New(cam, sys, tb, cfg.Scene.TimeScale, width, height), nil
}
