package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/constants"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/menu"
	"github.com/BrandonKowalski/consolemenu/pkg/consolemenu/platform/cannoli"
	"github.com/spf13/cobra"
)

//go:embed demo.toml
var demoMenu []byte

type runFlags struct {
	menuPath     string
	locale       string
	messageFiles []string
	plain        bool
	mappingPath  string
	evdevPath    string
	logPath      string
	logLevel     string
	flip         bool
	platform     string
}

func newRootCommand() *cobra.Command {
	var flags runFlags

	rootCmd := &cobra.Command{
		Use:           "consolemenu",
		Short:         "Navigate a text-console menu with a d-pad",
		Long:          "consolemenu runs a TOML-defined stack of menus on a terminal or a handheld console's input device.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv(constants.InputCaptureEnvVar) != "" {
				return runCapture(cmd.Context(), flags.evdevPath, "custom_input_mapping.toml")
			}
			return runMenu(cmd.Context(), flags)
		},
	}

	rootCmd.Flags().StringVar(&flags.menuPath, "menu", "", "Menu definition file (built-in demo when empty)")
	rootCmd.Flags().StringVar(&flags.locale, "locale", "", "Locale for menu text, e.g. fr or pt-BR")
	rootCmd.Flags().StringSliceVar(&flags.messageFiles, "messages", nil, "Message files named active.<lang>.toml")
	rootCmd.Flags().BoolVar(&flags.plain, "plain", false, "Write ANSI text to stdout instead of taking over the terminal")
	rootCmd.Flags().StringVar(&flags.mappingPath, "mapping", "", "Input mapping TOML file")
	rootCmd.PersistentFlags().StringVar(&flags.evdevPath, "evdev", "", "Input device, e.g. /dev/input/event1")
	rootCmd.Flags().StringVar(&flags.logPath, "log", "logs/consolemenu.log", "Log file path")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flags.flip, "flip", false, "Use direct face button mapping (A=A, B=B)")
	rootCmd.Flags().StringVar(&flags.platform, "platform", "", "Firmware theme to apply: cannoli")

	rootCmd.AddCommand(newCaptureCommand(&flags))

	return rootCmd
}

func newCaptureCommand(flags *runFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Record an input mapping from a device",
		Long:  "Prompts for every button in turn and records the key code pressed. Press an already captured button to skip one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCapture(cmd.Context(), flags.evdevPath, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "input_mapping.toml", "Where to write the mapping")

	return cmd
}

func runMenu(ctx context.Context, flags runFlags) error {
	def, err := loadDefinition(flags.menuPath)
	if err != nil {
		return err
	}

	theme, err := platformTheme(flags.platform)
	if err != nil {
		return err
	}

	session, err := consolemenu.Init(consolemenu.Options{
		LogPath:          flags.logPath,
		LogLevel:         flags.logLevel,
		InputMappingFile: flags.mappingPath,
		EvdevPath:        flags.evdevPath,
		Locale:           flags.locale,
		MessageFiles:     flags.messageFiles,
		FlipFaceButtons:  flags.flip,
		Plain:            flags.plain,
		Theme:            theme,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	logger := consolemenu.GetLogger()
	stack := session.Stack()

	builder := &menu.Builder{
		Definition: def,
		Stack:      stack,
		Localizer:  session.Localizer(),
		Actions: map[string]func(){
			"quit":      session.Quit,
			"back":      stack.Unwind,
			"main_menu": stack.Reset,
			"launch": func() {
				if entry, ok := stack.Entry(); ok {
					logger.Info("Launch requested", "title", entry.Text)
				}
			},
		},
	}

	root, err := builder.Root()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = session.Run(ctx, root)
	if errors.Is(err, context.Canceled) {
		return nil
	}

	logger.Info("Session ended", "presses", session.Presses())
	return err
}

func loadDefinition(path string) (*menu.Definition, error) {
	if path == "" {
		return menu.Parse(demoMenu)
	}
	return menu.Load(path)
}

func platformTheme(name string) (*consolemenu.Theme, error) {
	switch name {
	case "":
		return nil, nil
	case "cannoli":
		theme := cannoli.Theme()
		return &theme, nil
	}
	return nil, fmt.Errorf("unknown platform %q", name)
}

func runCapture(ctx context.Context, devicePath, output string) error {
	if devicePath == "" {
		return errors.New("capture needs --evdev")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := consolemenu.CaptureInputMapping(ctx, devicePath, output, func(button constants.VirtualButton) {
		fmt.Printf("Press %s\n", button.GetName())
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved mapping to %s\n", output)
	return nil
}
