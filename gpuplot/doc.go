// Package gpuplot uploads fastplot scene content to a GPU.
//
// A Surface binds a fastplot.Plot to a host GPU device obtained
// through gogpu's gpucontext interfaces. Flush converts dirty image
// textures through their colormap lookup tables and uploads them;
// RenderTo draws the uploaded textures into a host draw context.
//
// The device helpers (NewDevice, DeviceQueue, ReleaseDevice) cover the
// standalone case where the host supplies a raw wgpu adapter instead
// of a gpucontext.DeviceProvider.
package gpuplot
