package consolemenu

import (
	"context"
	"sync"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/internal"
	"github.com/holoplot/go-evdev"
)

// CaptureInputMapping records a button mapping from a physical device and
// writes it as TOML to outputPath. prompt is called before each button is
// awaited; pressing an already captured button skips the current one.
func CaptureInputMapping(ctx context.Context, devicePath, outputPath string, prompt func(constants.VirtualButton)) error {
	device, err := evdev.Open(devicePath)
	if err != nil {
		return NewInfrastructureError("open_input_device", err)
	}
	return captureFrom(ctx, device, outputPath, prompt)
}

type captureDevice interface {
	internal.EventReader
	Close() error
}

func captureFrom(ctx context.Context, device captureDevice, outputPath string, prompt func(constants.VirtualButton)) error {
	var closeOnce sync.Once
	closeDevice := func() {
		closeOnce.Do(func() { device.Close() })
	}
	defer closeDevice()

	// Unblocks ReadOne when ctx ends.
	stop := context.AfterFunc(ctx, closeDevice)
	defer stop()

	mapping, err := internal.CaptureMapping(ctx, device, prompt)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return NewInfrastructureError("capture_input", err)
	}

	if err := mapping.SaveToTOML(outputPath); err != nil {
		return NewInfrastructureError("save_input_mapping", err)
	}

	internal.GetInternalLogger().Info("Saved input mapping", "path", outputPath)
	return nil
}
