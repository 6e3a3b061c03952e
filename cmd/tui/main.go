// Command tui plays the adventure in a terminal.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/input"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/world"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
)

func main() {
	configDir := flag.String("config", "cmd/game/configs", "Directory holding adventure.yaml")
	logFile := flag.String("log", "arcade-tui.log", "Log file")
	seedFlag := flag.Int64("seed", 0, "World seed (default: config seed, then the clock)")
	record := flag.String("record", "", "Record input to file")
	flag.Parse()

	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger.InitWithOutput(f)
	log := logger.Component("tui")

	if err := run(*configDir, *seedFlag, *record, log); err != nil {
		log.WithError(err).Error("Terminal game exited with error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configDir string, seed int64, record string, log *logrus.Entry) error {
	cfg, err := config.NewLoader(configDir).LoadAdventure()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, err := world.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorWhite))

	s := newSession(w, input.DefaultBindings())
	if record != "" {
		s.recorder = replay.NewRecorder(seed, "adventure")
		defer s.save(record, log)
	}
	log.WithField("seed", seed).Info("Terminal session started")

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(cfg.FrameStep.Duration())
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
				if name, ok := keyName(ev); ok {
					s.keys.press(name, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			s.frame(s.keys.state(now))
			render(screen, w, s.dialog)
		}
	}
}
