package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/pkg/math"
)

func TestCameraConfig(t *testing.T) {
	cc := CameraConfig(config.Default().Camera)

	if cc.Eye != (math.Vec3{X: 0, Y: 100, Z: 0}) {
		t.Errorf("eye = %v", cc.Eye)
	}
	if cc.Up != (math.Vec3{X: 0, Y: 0, Z: 1}) {
		t.Errorf("up = %v", cc.Up)
	}
	if math32.Abs(cc.FovY-math32.Pi/4) > 1e-6 {
		t.Errorf("fovy = %f, want pi/4", cc.FovY)
	}
	if cc.Near != 1 || cc.Far != 1000 {
		t.Errorf("clip = %f..%f, want 1..1000", cc.Near, cc.Far)
	}
}

func TestLoadSystemDefault(t *testing.T) {
	sys, err := LoadSystem(config.Default().Scene)
	if err != nil {
		t.Fatalf("LoadSystem: %v", err)
	}
	if _, ok := sys.Index("earth"); !ok {
		t.Error("built-in catalog has no earth")
	}
}

func TestLoadSystemFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.yaml")
	data := []byte(`bodies:
  - {name: a, texture: a, radius: 1, rotation_period: 1}
  - {name: b, texture: b, distance: 4, radius: 0.5, revolution_period: 2}
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	scene := config.Default().Scene
	scene.Catalog = path
	sys, err := LoadSystem(scene)
	if err != nil {
		t.Fatalf("LoadSystem: %v", err)
	}
	if len(sys.Bodies) != 2 {
		t.Errorf("got %d bodies, want 2", len(sys.Bodies))
	}

	scene.Catalog = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := LoadSystem(scene); err == nil {
		t.Error("expected error for missing catalog")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Sensitivity = 2
	cfg.Scene.TimeScale = 3

	c, err := FromConfig(cfg, 640, 480)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if c.Trackball.Sensitivity() != 2 {
		t.Errorf("sensitivity = %f, want 2", c.Trackball.Sensitivity())
	}
	if c.TimeScale != 3 {
		t.Errorf("time scale = %f, want 3", c.TimeScale)
	}
	if w, h := c.WindowSize(); w != 640 || h != 480 {
		t.Errorf("window = %dx%d, want 640x480", w, h)
	}
	if math32.Abs(c.Camera.Aspect-640.0/480.0) > 1e-6 {
		t.Errorf("aspect = %f", c.Camera.Aspect)
	}
}
