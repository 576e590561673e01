package gpuplot

import (
	"fmt"

	"github.com/gogpu/wgpu/core"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/fastplot"
)

// GPUInfo contains information about the selected GPU.
type GPUInfo struct {
	// Name is the GPU name (e.g. "NVIDIA GeForce RTX 3080").
	Name string
	// Vendor is the GPU vendor.
	Vendor string
	// DeviceType is the type of GPU (discrete, integrated, etc.).
	DeviceType types.DeviceType
	// Backend is the graphics API in use (Vulkan, Metal, DX12).
	Backend types.Backend
	// Driver is the driver version string.
	Driver string
}

// String returns a human-readable description of the GPU.
func (g *GPUInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", g.Name, g.DeviceType, g.Backend)
}

// AdapterInfo retrieves information about a GPU adapter. The adapter
// comes from the host windowing layer, which owns instance and adapter
// selection.
func AdapterInfo(adapterID core.AdapterID) (*GPUInfo, error) {
	info, err := core.GetAdapterInfo(adapterID)
	if err != nil {
		return nil, fmt.Errorf("gpuplot: failed to get adapter info: %w", err)
	}
	return &GPUInfo{
		Name:       info.Name,
		Vendor:     info.Vendor,
		DeviceType: info.DeviceType,
		Backend:    info.Backend,
		Driver:     info.Driver,
	}, nil
}

// NewDevice creates a logical device on the adapter, for standalone
// use when no gpucontext host is available.
func NewDevice(adapterID core.AdapterID, label string) (core.DeviceID, error) {
	desc := &types.DeviceDescriptor{
		Label:            label,
		RequiredFeatures: nil,
		RequiredLimits:   types.DefaultLimits(),
	}
	deviceID, err := core.RequestDevice(adapterID, desc)
	if err != nil {
		return core.DeviceID{}, fmt.Errorf("gpuplot: failed to create device: %w", err)
	}

	if info, err := AdapterInfo(adapterID); err == nil {
		fastplot.Logger().Info("GPU device created", "gpu", info.String(), "driver", info.Driver)
	}
	return deviceID, nil
}

// DeviceQueue retrieves the command queue associated with a device.
func DeviceQueue(deviceID core.DeviceID) (core.QueueID, error) {
	queueID, err := core.GetDeviceQueue(deviceID)
	if err != nil {
		return core.QueueID{}, fmt.Errorf("gpuplot: failed to get device queue: %w", err)
	}
	return queueID, nil
}

// ReleaseDevice releases a device and its associated resources.
// Releasing a zero device is a no-op.
func ReleaseDevice(deviceID core.DeviceID) error {
	if deviceID.IsZero() {
		return nil
	}
	if err := core.DeviceDrop(deviceID); err != nil {
		return fmt.Errorf("gpuplot: failed to release device: %w", err)
	}
	return nil
}

// ReleaseAdapter releases an adapter. Releasing a zero adapter is a
// no-op.
func ReleaseAdapter(adapterID core.AdapterID) error {
	if adapterID.IsZero() {
		return nil
	}
	if err := core.AdapterDrop(adapterID); err != nil {
		return fmt.Errorf("gpuplot: failed to release adapter: %w", err)
	}
	return nil
}

// CheckDeviceLimits verifies the device can hold a plot's largest
// image texture. Pass the longest texture side in texels; zero skips
// the size check and only validates that limits are readable.
func CheckDeviceLimits(deviceID core.DeviceID, maxSide int) error {
	limits, err := core.GetDeviceLimits(deviceID)
	if err != nil {
		return fmt.Errorf("gpuplot: failed to get device limits: %w", err)
	}
	if maxSide > 0 && uint32(maxSide) > limits.MaxTextureDimension2D {
		return fmt.Errorf("gpuplot: texture side %d exceeds device limit %d",
			maxSide, limits.MaxTextureDimension2D)
	}
	fastplot.Logger().Debug("device limits",
		"maxTextureDimension2D", limits.MaxTextureDimension2D,
		"maxBufferSize", limits.MaxBufferSize)
	return nil
}
