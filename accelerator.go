package splat

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this cloud or
// target. The caller should transparently fall back to CPU projection.
var ErrFallbackToCPU = errors.New("splat: falling back to CPU rendering")

// AcceleratedOp describes operation types for capability checking.
type AcceleratedOp uint32

const (
	// AccelSplat represents point splatting into a pixel buffer.
	AccelSplat AcceleratedOp = 1 << iota

	// AccelDepthSort represents hardware depth ordering.
	AccelDepthSort
)

// SplatTarget provides pixel buffer access for accelerator output.
// The Data slice must be in RGBA format, 4 bytes per pixel, laid out row
// by row with the given Stride.
type SplatTarget struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
}

// GPUAccelerator is an optional hardware splatting provider.
//
// When registered via RegisterAccelerator, renderers try hardware
// splatting first. If the accelerator returns ErrFallbackToCPU or any
// error, rendering transparently falls back to the CPU engine.
//
// Implementations live in backend packages outside this module; this
// module holds no GPU state of its own. Users opt in via blank import:
//
//	import _ "github.com/gogpu/splat-wgpu" // enables hardware splatting
type GPUAccelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "vulkan").
	Name() string

	// Init initializes backend resources. Called once during registration.
	Init() error

	// Close releases backend resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// operation. A fast check used to skip the backend entirely.
	CanAccelerate(op AcceleratedOp) bool

	// Splat renders the cloud into the target.
	// Returns ErrFallbackToCPU if this cloud cannot be accelerated.
	Splat(target SplatTarget, cloud *Cloud, view View, rect Rect, opts ...Option) (Result, error)

	// Flush dispatches any pending operations to the target pixel
	// buffer. Immediate-mode accelerators return nil.
	Flush(target SplatTarget) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share GPU resources with an external provider (e.g., a gogpu window).
// When SetDeviceProvider is called, the accelerator reuses the provided
// device instead of creating its own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

var (
	accelMu sync.RWMutex
	accel   GPUAccelerator
)

// RegisterAccelerator registers a hardware splatting backend.
//
// Only one accelerator can be registered. Subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration; if it fails, the accelerator is not registered and the
// error is returned.
//
// Typical usage via init() in backend packages:
//
//	func init() {
//	    splat.RegisterAccelerator(NewWGPUSplatter())
//	}
func RegisterAccelerator(a GPUAccelerator) error {
	if a == nil {
		return errors.New("splat: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// Accelerator returns the currently registered accelerator, or nil.
func Accelerator() GPUAccelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// SetAcceleratorDeviceProvider passes a device provider to the registered
// accelerator, enabling device sharing with the host. If no accelerator
// is registered or it doesn't support device sharing, this is a no-op.
func SetAcceleratorDeviceProvider(provider any) error {
	a := Accelerator()
	if a == nil {
		return nil
	}
	if dpa, ok := a.(DeviceProviderAware); ok {
		return dpa.SetDeviceProvider(provider)
	}
	return nil
}

// UnregisterAccelerator removes and closes the registered accelerator.
// Useful for tests.
func UnregisterAccelerator() {
	accelMu.Lock()
	old := accel
	accel = nil
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
}
