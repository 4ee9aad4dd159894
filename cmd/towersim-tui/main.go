// cmd/towersim-tui/main.go
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/snapshot"
	"go-tower-sim/internal/tui"
)

func main() {
	envFile := flag.String("env", ".env", "settings file with TOWERSIM_* variables")
	layoutPath := flag.String("layout", "", "map layout file (default: built-in map)")
	loadPath := flag.String("load", "", "snapshot to resume from")
	savePath := flag.String("save", "towersim.sav", "where the s key writes snapshots")
	logPath := flag.String("log", "towersim.log", "log file")
	flag.Parse()

	// the terminal belongs to the UI; logs go to a file
	f, err := tea.LogToFile(*logPath, "towersim")
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}

	var game *app.Game
	if *loadPath != "" {
		st, err := snapshot.LoadFile(*loadPath)
		if err != nil {
			log.Fatal(err)
		}
		game, err = app.Restore(settings, st)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		layout := config.DefaultLayout
		if *layoutPath != "" {
			if layout, err = config.LoadLayout(*layoutPath); err != nil {
				log.Fatal(err)
			}
		}
		if game, err = app.NewGame(settings, layout); err != nil {
			log.Fatal(err)
		}
	}
	game.SetLogger(log.New(f, "[towersim "+game.SessionID.String()[:8]+"] ", log.LstdFlags))

	p := tea.NewProgram(tui.NewModel(game, *savePath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
