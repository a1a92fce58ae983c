// Command bismuth-demo is an interactive playground for the animation
// toolkit: an easing gallery, a spring playground and a swipe lane, all
// rendered in the terminal.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-bismuth/bismuth/pkg/settings"
)

func main() {
	cfg, err := settings.LoadOptional(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.FromEnvironment()

	program := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
