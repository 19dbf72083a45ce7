package splat

import (
	"errors"
	"log/slog"
	"testing"
)

// fakeAccelerator records lifecycle calls for registry tests.
type fakeAccelerator struct {
	name      string
	initErr   error
	initCalls int
	closed    bool
	logger    *slog.Logger
}

func (f *fakeAccelerator) Name() string { return f.name }

func (f *fakeAccelerator) Init() error {
	f.initCalls++
	return f.initErr
}

func (f *fakeAccelerator) Close() { f.closed = true }

func (f *fakeAccelerator) CanAccelerate(AcceleratedOp) bool { return true }

func (f *fakeAccelerator) Splat(SplatTarget, *Cloud, View, Rect, ...Option) (Result, error) {
	return Result{}, ErrFallbackToCPU
}

func (f *fakeAccelerator) Flush(SplatTarget) error { return nil }

func (f *fakeAccelerator) SetLogger(l *slog.Logger) { f.logger = l }

func TestRegisterAccelerator(t *testing.T) {
	t.Cleanup(UnregisterAccelerator)

	fake := &fakeAccelerator{name: "fake"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatalf("RegisterAccelerator() error = %v", err)
	}
	if fake.initCalls != 1 {
		t.Errorf("Init called %d times, want 1", fake.initCalls)
	}
	if got := Accelerator(); got != fake {
		t.Errorf("Accelerator() = %v, want the registered fake", got)
	}
	if fake.logger == nil {
		t.Error("logger not propagated during registration")
	}
}

func TestRegisterAcceleratorNil(t *testing.T) {
	if err := RegisterAccelerator(nil); err == nil {
		t.Error("RegisterAccelerator(nil) error = nil, want error")
	}
}

func TestRegisterAcceleratorInitFailure(t *testing.T) {
	t.Cleanup(UnregisterAccelerator)

	fake := &fakeAccelerator{name: "broken", initErr: errors.New("no device")}
	if err := RegisterAccelerator(fake); err == nil {
		t.Fatal("RegisterAccelerator() error = nil, want init error")
	}
	if Accelerator() != nil {
		t.Error("failed accelerator was registered anyway")
	}
}

func TestRegisterAcceleratorReplacesAndClosesOld(t *testing.T) {
	t.Cleanup(UnregisterAccelerator)

	first := &fakeAccelerator{name: "first"}
	second := &fakeAccelerator{name: "second"}
	if err := RegisterAccelerator(first); err != nil {
		t.Fatal(err)
	}
	if err := RegisterAccelerator(second); err != nil {
		t.Fatal(err)
	}
	if !first.closed {
		t.Error("replaced accelerator was not closed")
	}
	if got := Accelerator(); got != second {
		t.Errorf("Accelerator() = %v, want second", got)
	}
}

// deviceAwareAccelerator additionally accepts a shared device provider.
type deviceAwareAccelerator struct {
	fakeAccelerator
	provider    any
	providerErr error
}

func (d *deviceAwareAccelerator) SetDeviceProvider(provider any) error {
	d.provider = provider
	return d.providerErr
}

func TestSetAcceleratorDeviceProvider(t *testing.T) {
	t.Cleanup(UnregisterAccelerator)

	aware := &deviceAwareAccelerator{fakeAccelerator: fakeAccelerator{name: "aware"}}
	if err := RegisterAccelerator(aware); err != nil {
		t.Fatal(err)
	}

	provider := struct{ tag string }{tag: "host device"}
	if err := SetAcceleratorDeviceProvider(provider); err != nil {
		t.Fatalf("SetAcceleratorDeviceProvider() error = %v", err)
	}
	if aware.provider != provider {
		t.Errorf("provider = %v, want %v", aware.provider, provider)
	}
}

func TestSetAcceleratorDeviceProviderError(t *testing.T) {
	t.Cleanup(UnregisterAccelerator)

	aware := &deviceAwareAccelerator{
		fakeAccelerator: fakeAccelerator{name: "aware"},
		providerErr:     errors.New("device lost"),
	}
	if err := RegisterAccelerator(aware); err != nil {
		t.Fatal(err)
	}
	if err := SetAcceleratorDeviceProvider(nil); err == nil {
		t.Error("SetAcceleratorDeviceProvider() error = nil, want accelerator error")
	}
}

func TestSetAcceleratorDeviceProviderNoAccelerator(t *testing.T) {
	UnregisterAccelerator()
	if err := SetAcceleratorDeviceProvider("anything"); err != nil {
		t.Errorf("SetAcceleratorDeviceProvider() error = %v, want nil without accelerator", err)
	}
}

func TestSetAcceleratorDeviceProviderUnaware(t *testing.T) {
	t.Cleanup(UnregisterAccelerator)

	fake := &fakeAccelerator{name: "plain"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}
	if err := SetAcceleratorDeviceProvider("anything"); err != nil {
		t.Errorf("SetAcceleratorDeviceProvider() error = %v, want nil for unaware accelerator", err)
	}
}

func TestUnregisterAccelerator(t *testing.T) {
	fake := &fakeAccelerator{name: "fake"}
	if err := RegisterAccelerator(fake); err != nil {
		t.Fatal(err)
	}
	UnregisterAccelerator()
	if !fake.closed {
		t.Error("unregistered accelerator was not closed")
	}
	if Accelerator() != nil {
		t.Error("Accelerator() non-nil after unregister")
	}
}
