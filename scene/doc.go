// Package scene provides the retained-mode scene objects that fastplot
// graphics are built from.
//
// A scene object is a drawable unit: a geometry (vertex buffers or a
// texture grid) paired with a material. Buffers and textures support
// in-place replacement with explicit dirty-range tracking, so a
// renderer can re-upload only the regions that changed since the last
// frame. Object identity is stable: data updates mutate buffers, never
// replace objects.
//
// Materials carry their WGSL shader source; CompileShader translates
// a material's source to SPIR-V via gogpu/naga.
//
// Scene objects are NOT safe for concurrent use. Mutations must be
// serialized with redraw cycles by the caller.
package scene
