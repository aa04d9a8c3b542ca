package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/foodtracker/core"
	"github.com/jask/foodtracker/internal/config"
	"github.com/jask/foodtracker/internal/meal"
	"github.com/jask/foodtracker/internal/rating"
	"github.com/jask/foodtracker/screens"
	"github.com/jask/foodtracker/widgets"
)

func main() {
	// stdout carries the saved record; everything else goes to stderr
	log.SetOutput(os.Stderr)
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if written, err := config.WriteIfMissing(cfg); err != nil {
		log.Printf("warn: %v", err)
	} else if written {
		log.Printf("wrote default config to %s", config.Path())
	}

	sink, err := meal.NewWriterSink(os.Stdout, cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	ctl := rating.New()
	if err := ctl.Configure(cfg.Rating.StarCount, rating.Size{Width: cfg.Rating.StarWidth, Height: cfg.Rating.StarHeight}); err != nil {
		return fmt.Errorf("rating: %w", err)
	}

	// the UI owns the terminal; log to a file or nowhere
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "foodtracker")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keybindings))

	var saved meal.Collector
	form := screens.NewMealForm(screens.FormOptions{
		Rating:        ctl,
		Keys:          keys,
		Metrics:       widgets.CellMetrics{Width: cfg.Display.CellWidth, Height: cfg.Display.CellHeight},
		PreviewWidth:  cfg.Photo.PreviewWidth,
		PreviewHeight: cfg.Photo.PreviewHeight,
		Debug:         cfg.Log.Debug,
		OpenPhotoPicker: func() core.Screen {
			return screens.NewPhotoPicker(keys, cfg.Photo.StartDir, cfg.Photo.PreviewHeight+6)
		},
		OnTextEditingEnded: func(name string) {
			if cfg.Log.Debug {
				log.Printf("debug: name field ended editing with %q", name)
			}
		},
		OnSaveRequested: func(rec meal.Record) {
			if err := saved.Consume(rec); err != nil {
				log.Printf("warn: collect meal: %v", err)
			}
		},
	})

	p := tea.NewProgram(core.NewModel("FoodTracker", form, keys), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	rec, ok := saved.Last()
	if !ok {
		return nil
	}
	if err := sink.Consume(rec); err != nil {
		return fmt.Errorf("write meal: %w", err)
	}
	return nil
}
