// Package consolemenu provides text-console menu navigation for homebrew on
// handheld gaming consoles: a stack of views, each a list of heading,
// selectable, inactive and blank entries, driven by a d-pad and two face buttons.
//
// The package handles console setup, input mapping and the input loop. The
// navigation core is ViewStack, which can also be driven directly.
package consolemenu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/internal"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/atomic"
)

// Options configures a Session.
type Options struct {
	LogPath          string    // Full path for log file including filename (creates parent directories)
	LogLevel         string    // Application log level: debug, info, warn or error
	InputMappingFile string    // TOML button mapping; built-in defaults when empty
	EvdevPath        string    // Linux input device, e.g. /dev/input/event1 (ignored in DEV mode)
	Locale           string    // BCP 47 tag used to localize menu text
	MessageFiles     []string  // go-i18n message files, e.g. active.fr.toml
	FlipFaceButtons  bool      // Use direct face button mapping (A=A, B=B) instead of Nintendo-style swap
	Plain            bool      // Write ANSI text to Output instead of taking over the terminal
	Theme            *Theme    // Terminal colors, the terminal's own palette when nil
	Output           io.Writer // Plain mode output, os.Stdout when nil
}

// Session runs a ViewStack against a console and one or more input sources.
type Session struct {
	console   Console
	closers   []io.Closer
	sources   []internal.InputSource
	stack     *ViewStack
	localizer *i18n.Localizer

	inputDelay time.Duration
	lastInput  time.Time

	running atomic.Bool
	started atomic.Bool
	closed  atomic.Bool
	presses atomic.Int64
}

type inputFrame struct {
	source int
	mask   constants.ButtonMask
	err    error
}

var closeLogger = internal.CloseLogger

// Init configures logging, loads the button mapping and messages, and opens
// the console and input devices. The log file is closed again when Init fails.
func Init(options Options) (s *Session, err error) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	defer func() {
		if err != nil {
			closeLogger()
		}
	}()

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	mapping := internal.DefaultInputMapping()
	if options.InputMappingFile != "" {
		loaded, err := internal.LoadInputMapping(options.InputMappingFile)
		if err != nil {
			return nil, NewInfrastructureError("load_input_mapping", err)
		}
		mapping = loaded
	}

	if options.FlipFaceButtons || constants.IsFlipFaceButtons() {
		mapping.FlipFaceButtons = true
	}

	bundle, err := internal.NewBundle(options.MessageFiles...)
	if err != nil {
		return nil, NewInfrastructureError("load_messages", err)
	}

	evdevPath := options.EvdevPath
	if constants.IsDevMode() {
		evdevPath = ""
	}

	var console Console
	var closers []io.Closer
	var sources []internal.InputSource

	if options.Plain {
		if evdevPath == "" {
			return nil, NewInfrastructureError("init_input", errors.New("plain output needs an evdev device for input"))
		}

		out := options.Output
		if out == nil {
			out = os.Stdout
		}

		wc := internal.NewWriterConsole(out)
		console = wc
		closers = append(closers, wc)
	} else {
		if options.Theme != nil {
			internal.SetTheme(options.Theme.terminalTheme())
		}

		tc, err := internal.NewTerminalConsole()
		if err != nil {
			return nil, NewInfrastructureError("init_console", err)
		}

		console = tc
		closers = append(closers, tc)
		sources = append(sources, internal.NewKeyboardSource(tc, mapping, func() {
			tc.Screen().Sync()
		}))
	}

	if evdevPath != "" {
		src, err := internal.OpenEvdevSource(evdevPath, mapping)
		if err != nil {
			for _, c := range closers {
				c.Close()
			}
			return nil, NewInfrastructureError("open_input_device", err)
		}
		sources = append(sources, src)
	}

	s = newSession(console, sources...)
	s.closers = closers
	s.localizer = internal.NewLocalizer(bundle, options.Locale)

	internal.GetInternalLogger().Debug("Session initialized",
		"plain", options.Plain,
		"evdev", evdevPath,
		"locale", options.Locale,
		"flip_face_buttons", mapping.FlipFaceButtons,
	)

	return s, nil
}

func newSession(console Console, sources ...internal.InputSource) *Session {
	return &Session{
		console:    console,
		sources:    sources,
		stack:      NewViewStack(console),
		inputDelay: constants.DefaultInputDelay,
	}
}

// Stack returns the session's view stack, for use in entry callbacks.
func (s *Session) Stack() *ViewStack {
	return s.stack
}

// Localizer returns the localizer built from Options.Locale and MessageFiles.
func (s *Session) Localizer() *i18n.Localizer {
	return s.localizer
}

// Presses returns the number of accepted button presses so far.
func (s *Session) Presses() int64 {
	return s.presses.Load()
}

// Run pushes root and processes input until Quit is called, an input source
// asks to quit, or ctx is done. Each input event is fully handled, callbacks
// and rendering included, before the next one is read.
func (s *Session) Run(ctx context.Context, root *View) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if root == nil {
		return NewInfrastructureError("run", errors.New("nil root view"))
	}
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	s.running.Store(true)
	s.stack.Push(root)

	done := make(chan struct{})
	defer close(done)

	frames := make(chan inputFrame, 16)
	for i, src := range s.sources {
		go pump(i, src, frames, done)
	}

	held := make([]constants.ButtonMask, len(s.sources))
	tracker := internal.ButtonTracker{}
	directional := internal.NewDirectionalInput()

	ticker := time.NewTicker(constants.DefaultPollInterval)
	defer ticker.Stop()

	for s.running.Load() {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case frame := <-frames:
			if frame.err != nil {
				if errors.Is(frame.err, internal.ErrQuitRequested) {
					return nil
				}
				if s.closed.Load() {
					return ErrClosed
				}
				return NewInfrastructureError("read_input", frame.err)
			}

			held[frame.source] = frame.mask

			var combined constants.ButtonMask
			for _, m := range held {
				combined |= m
			}

			directional.SetHeldMask(combined)
			s.dispatch(tracker.Update(combined))

		case <-ticker.C:
			if button := directional.Update(); button != constants.VirtualButtonUnassigned {
				s.dispatch(button.Bit())
			}
		}
	}

	return nil
}

func pump(index int, src internal.InputSource, frames chan<- inputFrame, done <-chan struct{}) {
	for {
		mask, err := src.Next()
		select {
		case frames <- inputFrame{source: index, mask: mask, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// The layer itself never debounces; the session drops presses that arrive
// closer together than the input delay.
func (s *Session) dispatch(pressed constants.ButtonMask) {
	if pressed == 0 {
		return
	}

	now := time.Now()
	if now.Sub(s.lastInput) < s.inputDelay {
		return
	}
	s.lastInput = now

	s.presses.Inc()
	internal.GetInternalLogger().Debug("Input", "pressed", pressed.String(), "depth", s.stack.Depth())

	s.stack.OnInput(pressed)
}

// Quit makes Run return after the current event.
func (s *Session) Quit() {
	s.running.Store(false)
}

// Close releases the console and input devices.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.running.Store(false)

	var errs []error
	for _, src := range s.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	closeLogger()
	return errors.Join(errs...)
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
