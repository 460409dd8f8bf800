// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// BodyVertexShader is the vertex shader for planets, satellites and rings.
//
//go:embed body.vert
var BodyVertexShader string

// BodyFragmentShader is the fragment shader for planets, satellites and rings.
//
//go:embed body.frag
var BodyFragmentShader string

// SkyVertexShader is the vertex shader for the star background.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader is the fragment shader for the star background.
//
//go:embed sky.frag
var SkyFragmentShader string
