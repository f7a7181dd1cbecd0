package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-weather/internal/config"
	"github.com/vovakirdan/tui-weather/internal/core"
	"github.com/vovakirdan/tui-weather/internal/platform/tui"
)

var (
	flagConfig         string
	flagRainColor      string
	flagLightningColor string
	flagThunder        bool
	flagMute           bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch the weather scene",
	Long: `Start the animation in the current terminal.

Colors accept the standard palette names (see 'weather palette');
unknown names fall back to the defaults: cyan rain, yellow lightning.

Examples:
  weather run
  weather run --thunder
  weather run --rain-color blue --lightning-color white
  weather run --config ./my-weather.yaml`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom weather config YAML")
	runCmd.Flags().StringVar(&flagRainColor, "rain-color", "", "Rain color name")
	runCmd.Flags().StringVar(&flagLightningColor, "lightning-color", "", "Lightning color name")
	runCmd.Flags().BoolVar(&flagThunder, "thunder", false, "Start in thunderstorm mode")
	runCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the thunder sound")
}

func runRun(cmd *cobra.Command, args []string) {
	// The animation needs a real terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: this program requires a terminal")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	weather, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagRainColor != "" {
		weather.Colors.Rain = flagRainColor
	}
	if flagLightningColor != "" {
		weather.Colors.Lightning = flagLightningColor
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Thunder: flagThunder,
		Muted:   flagMute,
	}

	if runErr := tui.Run(weather, cfg, opts); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}
