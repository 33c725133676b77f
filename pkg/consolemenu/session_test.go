package consolemenu

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFrame struct {
	mask constants.ButtonMask
	err  error
}

// fakeSource replays scripted frames and then blocks until closed.
type fakeSource struct {
	frames chan fakeFrame
	closed chan struct{}
}

func newFakeSource(frames ...fakeFrame) *fakeSource {
	src := &fakeSource{
		frames: make(chan fakeFrame, len(frames)+8),
		closed: make(chan struct{}),
	}
	for _, f := range frames {
		src.frames <- f
	}
	return src
}

func (s *fakeSource) Next() (constants.ButtonMask, error) {
	select {
	case f := <-s.frames:
		return f.mask, f.err
	case <-s.closed:
		return 0, io.EOF
	}
}

func (s *fakeSource) Close() error {
	close(s.closed)
	return nil
}

func press(buttons ...constants.VirtualButton) fakeFrame {
	return fakeFrame{mask: constants.MaskOf(buttons...)}
}

func release() fakeFrame {
	return fakeFrame{}
}

func runSession(t *testing.T, ctx context.Context, s *Session, root *View) error {
	t.Helper()
	t.Cleanup(func() { s.Close() })

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, root)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("session did not stop")
		return nil
	}
}

func TestSessionRunDispatchesPressedButtons(t *testing.T) {
	src := newFakeSource(
		press(constants.VirtualButtonDown), release(),
		press(constants.ButtonConfirm), release(),
	)
	s := newSession(newGridConsole(), src)
	s.inputDelay = 0

	var selected string
	root := NewView(
		Heading("Menu"),
		Select("Stay", nil),
		Select("Leave", func() {
			selected = "Leave"
			s.Quit()
		}),
	)

	err := runSession(t, context.Background(), s, root)

	require.NoError(t, err)
	assert.Equal(t, "Leave", selected)
	assert.Equal(t, 2, root.CursorPos())
	assert.Equal(t, int64(2), s.Presses())
}

func TestSessionHeldButtonFiresOnce(t *testing.T) {
	src := newFakeSource(
		press(constants.VirtualButtonDown),
		press(constants.VirtualButtonDown),
		press(constants.VirtualButtonDown, constants.ButtonConfirm),
	)
	s := newSession(newGridConsole(), src)
	s.inputDelay = 0

	root := NewView(Select("A", nil), Select("B", s.Quit), Select("C", nil))

	err := runSession(t, context.Background(), s, root)

	require.NoError(t, err)
	assert.Equal(t, 1, root.CursorPos())
	assert.Equal(t, int64(2), s.Presses())
}

func TestSessionCombinesSources(t *testing.T) {
	pad := newFakeSource(press(constants.VirtualButtonDown))
	keyboard := newFakeSource()
	s := newSession(newGridConsole(), pad, keyboard)
	s.inputDelay = 0

	root := NewView(Select("A", nil), Select("B", s.Quit))

	go func() {
		time.Sleep(50 * time.Millisecond)
		keyboard.frames <- press(constants.ButtonConfirm)
	}()

	err := runSession(t, context.Background(), s, root)

	require.NoError(t, err)
	assert.Equal(t, 1, root.CursorPos())
}

func TestSessionDebouncesPresses(t *testing.T) {
	src := newFakeSource(
		press(constants.VirtualButtonDown), release(),
		press(constants.VirtualButtonDown), release(),
	)
	s := newSession(newGridConsole(), src)
	s.inputDelay = time.Hour

	root := NewView(Select("A", nil), Select("B", nil), Select("C", nil))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := runSession(t, ctx, s, root)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, root.CursorPos())
	assert.Equal(t, int64(1), s.Presses())
}

func TestSessionStopsOnQuitRequest(t *testing.T) {
	src := newFakeSource(fakeFrame{err: internal.ErrQuitRequested})
	s := newSession(newGridConsole(), src)

	err := runSession(t, context.Background(), s, NewView(Select("A", nil)))

	assert.NoError(t, err)
}

func TestSessionReportsSourceFailure(t *testing.T) {
	src := newFakeSource(fakeFrame{err: io.ErrUnexpectedEOF})
	s := newSession(newGridConsole(), src)

	err := runSession(t, context.Background(), s, NewView(Select("A", nil)))

	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSessionHonoursContext(t *testing.T) {
	s := newSession(newGridConsole(), newFakeSource())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runSession(t, ctx, s, NewView(Select("A", nil)))

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSessionRunOnceAndClose(t *testing.T) {
	src := newFakeSource(fakeFrame{err: internal.ErrQuitRequested})
	s := newSession(newGridConsole(), src)

	require.NoError(t, runSession(t, context.Background(), s, NewView(Select("A", nil))))

	err := s.Run(context.Background(), NewView(Select("B", nil)))
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	err = s.Run(context.Background(), NewView(Select("C", nil)))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no such device")
	err := NewInfrastructureError("open_input_device", cause)

	assert.Equal(t, "consolemenu: open_input_device: no such device", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsInfrastructureError(err))
	assert.False(t, IsInfrastructureError(cause))
	assert.Equal(t, "consolemenu: render", NewInfrastructureError("render", nil).Error())
}

func TestSessionRunRejectsNilRoot(t *testing.T) {
	src := newFakeSource(fakeFrame{err: internal.ErrQuitRequested})
	s := newSession(newGridConsole(), src)
	t.Cleanup(func() { s.Close() })

	err := s.Run(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
	assert.Contains(t, err.Error(), "nil root view")
	assert.Nil(t, s.Stack().Current())

	assert.NoError(t, runSession(t, context.Background(), s, NewView(Select("A", nil))))
}

func TestInitClosesLoggerOnFailure(t *testing.T) {
	closed := 0
	orig := closeLogger
	closeLogger = func() { closed++ }
	t.Cleanup(func() { closeLogger = orig })

	_, err := Init(Options{InputMappingFile: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
	assert.Equal(t, 1, closed)

	_, err = Init(Options{MessageFiles: []string{filepath.Join(t.TempDir(), "active.fr.toml")}})
	require.Error(t, err)
	assert.Equal(t, 2, closed)

	_, err = Init(Options{Plain: true})
	require.Error(t, err)
	assert.Equal(t, 3, closed)
}
