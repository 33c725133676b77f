package internal

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestDirectional(clock *fakeClock) DirectionalInput {
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = clock.Now
	d.lastRepeatTime = clock.Now()
	return d
}

func TestDirectionalRepeatTiming(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	d := newTestDirectional(clock)

	d.SetHeldMask(constants.MaskOf(constants.VirtualButtonDown))
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	clock.Advance(299 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	clock.Advance(time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())

	clock.Advance(49 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	clock.Advance(time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())
}

func TestDirectionalReleaseRestartsDelay(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	d := newTestDirectional(clock)

	d.SetHeldMask(constants.MaskOf(constants.VirtualButtonUp))
	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUp, d.Update())

	d.SetHeldMask(0)
	assert.False(t, d.IsHeld())
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	d.SetHeldMask(constants.MaskOf(constants.VirtualButtonUp))
	clock.Advance(50 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())
}

func TestDirectionalIgnoresOtherButtons(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	d := newTestDirectional(clock)

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	assert.False(t, d.SetHeld(constants.VirtualButtonLeft, true))
	assert.False(t, d.IsHeld())

	clock.Advance(time.Second)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())
}

func TestDirectionalUpTakesPriority(t *testing.T) {
	d := NewDirectionalInput()
	d.SetHeldMask(constants.MaskOf(constants.VirtualButtonUp, constants.VirtualButtonDown))
	assert.Equal(t, constants.VirtualButtonUp, d.HeldButton())

	d.Reset()
	assert.Equal(t, constants.VirtualButtonUnassigned, d.HeldButton())
}

func TestButtonTracker(t *testing.T) {
	var tracker ButtonTracker
	down := constants.MaskOf(constants.VirtualButtonDown)
	downA := constants.MaskOf(constants.VirtualButtonDown, constants.VirtualButtonA)

	assert.Equal(t, down, tracker.Update(down))
	assert.Equal(t, constants.ButtonMask(0), tracker.Update(down))
	assert.Equal(t, constants.MaskOf(constants.VirtualButtonA), tracker.Update(downA))
	assert.Equal(t, downA, tracker.Held())
	assert.Equal(t, constants.ButtonMask(0), tracker.Update(0))
	assert.Equal(t, down, tracker.Update(down))

	tracker.Reset()
	assert.Equal(t, constants.ButtonMask(0), tracker.Held())
	assert.Equal(t, down, tracker.Update(down))
}
