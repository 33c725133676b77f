package internal

import (
	"context"
	"io"
	"testing"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureMapping(t *testing.T) {
	var events []*evdev.InputEvent
	for i := range constants.AllButtons {
		code := evdev.EvCode(700 + i)
		if constants.AllButtons[i] == constants.VirtualButtonX {
			// Pressing Down again skips X.
			code = 701
		}
		events = append(events, key(code, keyPressed), syn(), key(code, keyReleased))
	}
	reader := &scriptedReader{events: events}

	var prompted []constants.VirtualButton
	mapping, err := CaptureMapping(context.Background(), reader, func(b constants.VirtualButton) {
		prompted = append(prompted, b)
	})
	require.NoError(t, err)

	assert.Equal(t, constants.AllButtons, prompted)
	assert.Equal(t, []int{700}, mapping.Evdev["up"])
	assert.Equal(t, []int{701}, mapping.Evdev["down"])
	assert.NotContains(t, mapping.Evdev, "x")
	assert.Len(t, mapping.Evdev, len(constants.AllButtons)-1)
	assert.Equal(t, DefaultInputMapping().Keyboard, mapping.Keyboard)
	assert.NoError(t, mapping.Validate())
}

func TestCaptureMappingStopsOnReadError(t *testing.T) {
	reader := &scriptedReader{events: []*evdev.InputEvent{key(700, keyPressed)}}

	_, err := CaptureMapping(context.Background(), reader, func(constants.VirtualButton) {})
	assert.ErrorIs(t, err, io.EOF)
}

func TestCaptureMappingHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := CaptureMapping(ctx, &scriptedReader{}, func(constants.VirtualButton) {
		t.Fatal("prompted after cancel")
	})
	assert.ErrorIs(t, err, context.Canceled)
}
