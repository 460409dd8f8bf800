// Package renderer draws the solar system with OpenGL.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/lighting"
	"github.com/Faultbox/orrery/internal/engine/mesh"
	"github.com/Faultbox/orrery/internal/engine/renderer/shaders"
	"github.com/Faultbox/orrery/internal/engine/shader"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/orbit"
	"github.com/Faultbox/orrery/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width        int
	Height       int
	TextureDir   string
	SkyTexture   string // empty disables the sky
	Shininess    float32
	Ambient      float32 // ambient light intensity, 0-1
	Tessellation int
	Wireframe    bool
}

// clearColor is the background behind the sky.
var clearColor = [3]float32{39 / 255.0, 40 / 255.0, 34 / 255.0}

type bodyUniforms struct {
	model, view, projection, radius int32
	tex, alphaTex, useAlpha, lit    int32
	shininess, lightPosition        int32
	ambient, diffuse, specular      int32
}

type skyUniforms struct {
	view, projection, tex int32
}

// Renderer owns the GPU programs, meshes and textures of the scene.
type Renderer struct {
	config Config
	light  lighting.PointLight
	log    *zap.Logger

	bodyProgram uint32
	body        bodyUniforms
	skyProgram  uint32
	sky         skyUniforms

	sphere gpuMesh
	ring   gpuMesh
	skybox gpuMesh

	skyTex   uint32
	hasSky   bool
	fallback uint32

	textures map[string]uint32
}

// New compiles shaders, uploads geometry and loads every texture the system
// references. It must be called after the OpenGL context is current.
// Missing textures are replaced with a white fallback.
func New(cfg Config, sys *orbit.System) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		textures: make(map[string]uint32),
	}
	r.light = lighting.Sun()
	r.light.Ambient = [4]float32{cfg.Ambient, cfg.Ambient, cfg.Ambient, 1}
	r.light = r.light.Clamped()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], 1)

	if err := r.createPrograms(); err != nil {
		r.Close()
		return nil, err
	}

	tess := cfg.Tessellation
	if tess <= 0 {
		tess = mesh.DefaultTessellation
	}
	r.sphere = uploadMesh(mesh.Sphere(tess))
	r.ring = uploadMesh(mesh.Ring(tess))
	r.skybox = uploadPositions(mesh.Skybox())

	r.fallback = texture.Fallback()
	r.loadTextures(sys.Textures())
	r.loadSky()

	r.SetWireframe(cfg.Wireframe)
	r.Resize(cfg.Width, cfg.Height)

	r.log.Info("renderer ready",
		zap.Int("bodies", len(sys.Bodies)),
		zap.Int("rings", len(sys.Rings)),
		zap.Int("textures", len(r.textures)),
		zap.Bool("sky", r.hasSky),
	)
	return r, nil
}

func (r *Renderer) createPrograms() error {
	var err error
	r.bodyProgram, err = shader.CompileProgram(shaders.BodyVertexShader, shaders.BodyFragmentShader)
	if err != nil {
		return fmt.Errorf("body shader: %w", err)
	}
	locs, err := shader.Locations(r.bodyProgram,
		"uModel", "uView", "uProjection", "uRadius",
		"uTexture", "uAlphaTexture", "uUseAlpha", "uLit",
		"uShininess", "uLightPosition", "uAmbient", "uDiffuse", "uSpecular",
	)
	if err != nil {
		return fmt.Errorf("body shader: %w", err)
	}
	r.body = bodyUniforms{
		model:         locs["uModel"],
		view:          locs["uView"],
		projection:    locs["uProjection"],
		radius:        locs["uRadius"],
		tex:           locs["uTexture"],
		alphaTex:      locs["uAlphaTexture"],
		useAlpha:      locs["uUseAlpha"],
		lit:           locs["uLit"],
		shininess:     locs["uShininess"],
		lightPosition: locs["uLightPosition"],
		ambient:       locs["uAmbient"],
		diffuse:       locs["uDiffuse"],
		specular:      locs["uSpecular"],
	}

	r.skyProgram, err = shader.CompileProgram(shaders.SkyVertexShader, shaders.SkyFragmentShader)
	if err != nil {
		return fmt.Errorf("sky shader: %w", err)
	}
	locs, err = shader.Locations(r.skyProgram, "uView", "uProjection", "uTexture")
	if err != nil {
		return fmt.Errorf("sky shader: %w", err)
	}
	r.sky = skyUniforms{view: locs["uView"], projection: locs["uProjection"], tex: locs["uTexture"]}

	r.log.Debug("shader programs created",
		zap.Uint32("body", r.bodyProgram),
		zap.Uint32("sky", r.skyProgram),
	)
	return nil
}

func (r *Renderer) loadTextures(names []string) {
	maxSize := texture.MaxSize()
	for _, name := range names {
		img, err := texture.Load(r.config.TextureDir, name, maxSize)
		if err != nil {
			r.log.Warn("texture unavailable, using fallback",
				zap.String("texture", name),
				zap.Error(err),
			)
			r.textures[name] = r.fallback
			continue
		}
		r.textures[name] = texture.Upload(img)
		r.log.Debug("texture loaded",
			zap.String("texture", name),
			zap.Int("width", img.Rect.Dx()),
			zap.Int("height", img.Rect.Dy()),
		)
	}
}

// loadSky loads the background texture. A missing sky is skipped, since a
// white fallback would wash out the scene.
func (r *Renderer) loadSky() {
	if r.config.SkyTexture == "" {
		return
	}
	img, err := texture.Load(r.config.TextureDir, r.config.SkyTexture, texture.MaxSize())
	if err != nil {
		level := zap.WarnLevel
		if errors.Is(err, texture.ErrNotFound) {
			level = zap.InfoLevel
		}
		r.log.Check(level, "sky disabled").Write(zap.String("texture", r.config.SkyTexture), zap.Error(err))
		return
	}
	r.skyTex = texture.Upload(img)
	r.hasSky = true
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.sphere.delete()
	r.ring.delete()
	r.skybox.delete()

	seen := map[uint32]bool{r.fallback: true}
	for _, id := range r.textures {
		if !seen[id] {
			seen[id] = true
			texture.Delete(id)
		}
	}
	texture.Delete(r.fallback, r.skyTex)
	r.textures = map[string]uint32{}
	r.fallback, r.skyTex, r.hasSky = 0, 0, false

	if r.bodyProgram != 0 {
		gl.DeleteProgram(r.bodyProgram)
		r.bodyProgram = 0
	}
	if r.skyProgram != 0 {
		gl.DeleteProgram(r.skyProgram)
		r.skyProgram = 0
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetWireframe switches between filled and line polygons.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Wireframe reports whether polygons are drawn as lines.
func (r *Renderer) Wireframe() bool {
	return r.config.Wireframe
}

// Draw renders one frame: sky, bodies, then rings over them.
func (r *Renderer) Draw(cam *camera.Camera, sys *orbit.System) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.hasSky && !r.config.Wireframe {
		r.drawSky(cam)
	}

	gl.UseProgram(r.bodyProgram)
	gl.UniformMatrix4fv(r.body.view, 1, false, cam.View.Ptr())
	gl.UniformMatrix4fv(r.body.projection, 1, false, cam.Projection.Ptr())
	gl.Uniform1f(r.body.shininess, r.config.Shininess)
	gl.Uniform4fv(r.body.lightPosition, 1, &r.light.Position[0])
	gl.Uniform4fv(r.body.ambient, 1, &r.light.Ambient[0])
	gl.Uniform4fv(r.body.diffuse, 1, &r.light.Diffuse[0])
	gl.Uniform4fv(r.body.specular, 1, &r.light.Specular[0])
	gl.Uniform1i(r.body.tex, 0)
	gl.Uniform1i(r.body.alphaTex, 1)

	gl.Uniform1i(r.body.useAlpha, 0)
	for i := range sys.Bodies {
		b := &sys.Bodies[i]
		r.bindTexture(0, b.Texture)
		r.setLit(!b.Emissive)
		r.drawAt(&r.sphere, sys.ModelMatrix(i), b.Radius)
	}

	for i := range sys.Rings {
		ring := &sys.Rings[i]
		r.bindTexture(0, ring.Texture)
		if ring.Alpha != "" {
			r.bindTexture(1, ring.Alpha)
			gl.Uniform1i(r.body.useAlpha, 1)
		} else {
			gl.Uniform1i(r.body.useAlpha, 0)
		}
		r.setLit(true)
		r.drawAt(&r.ring, sys.RingMatrix(i), ring.Radius)
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.UseProgram(0)
}

func (r *Renderer) drawSky(cam *camera.Camera) {
	view := cam.View.WithoutTranslation()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.UseProgram(r.skyProgram)
	gl.UniformMatrix4fv(r.sky.view, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.sky.projection, 1, false, cam.Projection.Ptr())
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.skyTex)
	gl.Uniform1i(r.sky.tex, 0)
	r.skybox.draw()
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) drawAt(g *gpuMesh, model math.Mat4, radius float32) {
	gl.UniformMatrix4fv(r.body.model, 1, false, model.Ptr())
	gl.Uniform1f(r.body.radius, radius)
	g.draw()
}

func (r *Renderer) setLit(lit bool) {
	if lit {
		gl.Uniform1i(r.body.lit, 1)
	} else {
		gl.Uniform1i(r.body.lit, 0)
	}
}

func (r *Renderer) bindTexture(unit uint32, name string) {
	id, ok := r.textures[name]
	if !ok {
		id = r.fallback
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, id)
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
