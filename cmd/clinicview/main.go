package main

import (
	"flag"
	"fmt"
	"os"

	"clinic-scheduler/cmd/clinicview/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:3002", "Scheduling service base URL")
	flag.Parse()

	client := ui.NewClient(*baseURL)
	p := tea.NewProgram(ui.NewRootModel(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "clinicview:", err)
		os.Exit(1)
	}
}
