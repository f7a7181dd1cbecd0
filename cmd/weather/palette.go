package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-weather/internal/core"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List available color names",
	Long:  `Shows the color names accepted by --rain-color and --lightning-color.`,
	Run:   runPalette,
}

func runPalette(cmd *cobra.Command, args []string) {
	fmt.Println("Available colors:")
	fmt.Println()

	for _, name := range core.PaletteNames {
		suffix := ""
		switch name {
		case "cyan":
			suffix = "  (default rain)"
		case "yellow":
			suffix = "  (default lightning)"
		}
		fmt.Printf("  %-8s%s\n", name, suffix)
	}

	fmt.Println()
	fmt.Println("Unknown names fall back to the defaults.")
}
