package scene

import (
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/fastplot/cache"
)

// Material describes how a scene object is shaded: a solid color, per-
// vertex colors, or a sampled texture. This is a sealed interface -
// only types in this package implement it.
type Material interface {
	// ShaderSource returns the WGSL source implementing the material.
	ShaderSource() string

	isMaterial()
}

// PointsMaterial shades a point cloud with one solid color and a
// uniform point size. The underlying point pipeline supports a single
// color per draw object, which is why scatter graphics partition their
// data into one Points object per distinct color.
type PointsMaterial struct {
	Size  float32
	Color [4]float32
}

func (*PointsMaterial) isMaterial() {}

func (*PointsMaterial) ShaderSource() string { return pointsShaderWGSL }

// LineThinMaterial shades a vertex-colored line strip at device-native
// single-pixel width. It is the fast path for sizes below the
// thickness threshold.
type LineThinMaterial struct{}

func (*LineThinMaterial) isMaterial() {}

func (*LineThinMaterial) ShaderSource() string { return lineShaderWGSL }

// LineMaterial shades a vertex-colored line strip extruded to the
// given thickness in world units.
type LineMaterial struct {
	Thickness float32
}

func (*LineMaterial) isMaterial() {}

func (*LineMaterial) ShaderSource() string { return lineShaderWGSL }

// MeshBasicMaterial shades mesh triangles with one solid color,
// unlit.
type MeshBasicMaterial struct {
	Color [4]float32
}

func (*MeshBasicMaterial) isMaterial() {}

func (*MeshBasicMaterial) ShaderSource() string { return meshShaderWGSL }

// ImageMaterial shades an image quad by sampling the grid intensity,
// normalizing it to the contrast limits, and looking the result up in
// a colormap texture.
type ImageMaterial struct {
	// ClimMin and ClimMax are the intensity bounds mapped to the ends
	// of the colormap.
	ClimMin float32
	ClimMax float32

	// Map is the colormap lookup texture.
	Map *LUTTexture
}

func (*ImageMaterial) isMaterial() {}

func (*ImageMaterial) ShaderSource() string { return imageShaderWGSL }

// Clim returns the contrast limits as a (min, max) pair.
func (m *ImageMaterial) Clim() (float32, float32) { return m.ClimMin, m.ClimMax }

// SetClim replaces both contrast limits.
func (m *ImageMaterial) SetClim(minv, maxv float32) {
	m.ClimMin, m.ClimMax = minv, maxv
}

var shaderCache = cache.New[string, []byte](0, cache.StringHasher)

// CompileShader translates the material's WGSL source to SPIR-V via
// naga. Results are cached per source, so repeated calls for the same
// material kind are cheap.
func CompileShader(m Material) ([]byte, error) {
	src := m.ShaderSource()
	spirv, err := shaderCache.GetOrCreate(src, func() ([]byte, error) {
		return naga.Compile(src)
	})
	if err != nil {
		return nil, fmt.Errorf("scene: shader compilation failed: %w", err)
	}
	return spirv, nil
}

const pointsShaderWGSL = `
struct Uniforms {
    transform: mat4x4<f32>,
    color: vec4<f32>,
    size: f32,
};
@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return u.transform * vec4<f32>(position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u.color;
}
`

const lineShaderWGSL = `
struct Uniforms {
    transform: mat4x4<f32>,
};
@group(0) @binding(0) var<uniform> u: Uniforms;

struct VertexOut {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>,
           @location(1) color: vec4<f32>) -> VertexOut {
    var out: VertexOut;
    out.position = u.transform * vec4<f32>(position, 1.0);
    out.color = color;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    return in.color;
}
`

const meshShaderWGSL = `
struct Uniforms {
    transform: mat4x4<f32>,
    color: vec4<f32>,
};
@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return u.transform * vec4<f32>(position, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u.color;
}
`

const imageShaderWGSL = `
struct Uniforms {
    transform: mat4x4<f32>,
    clim: vec2<f32>,
};
@group(0) @binding(0) var<uniform> u: Uniforms;
@group(0) @binding(1) var grid: texture_2d<f32>;
@group(0) @binding(2) var cmap: texture_1d<f32>;
@group(0) @binding(3) var samp: sampler;

struct VertexOut {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@location(0) position: vec3<f32>,
           @location(1) uv: vec2<f32>) -> VertexOut {
    var out: VertexOut;
    out.position = u.transform * vec4<f32>(position, 1.0);
    out.uv = uv;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    let v = textureSampleLevel(grid, samp, in.uv, 0.0).r;
    let t = clamp((v - u.clim.x) / (u.clim.y - u.clim.x), 0.0, 1.0);
    return textureSampleLevel(cmap, samp, t, 0.0);
}
`
