// weather renders an animated rain and lightning scene in the terminal.
//
// Usage:
//
//	weather run                - Watch the scene in the current terminal
//	weather serve              - Start SSH server for remote watching
//	weather palette            - List available color names
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 66)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "weather",
	Short: "Animated rain and lightning for your terminal",
	Long: `weather draws a live rain animation in the terminal, with an optional
thunderstorm mode that adds branching lightning bolts.

Controls:
  t      - Toggle thunderstorm mode
  p      - Pause
  m      - Mute thunder sound
  ?      - Toggle key help
  q/Esc  - Quit

Examples:
  weather run
  weather run --thunder --rain-color blue
  weather serve --ssh :2222
  weather palette`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 66, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(paletteCmd)
}
