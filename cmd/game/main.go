package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/arcade/internal/application/game"
	"github.com/younwookim/arcade/internal/application/replay"
	"github.com/younwookim/arcade/internal/application/scene"
	"github.com/younwookim/arcade/internal/application/scene/adventure"
	"github.com/younwookim/arcade/internal/application/scene/menu"
	"github.com/younwookim/arcade/internal/application/scene/pitch"
	"github.com/younwookim/arcade/internal/infrastructure/config"
	"github.com/younwookim/arcade/internal/infrastructure/logger"
	"github.com/younwookim/arcade/internal/soccer"
)

//go:embed configs
var configFS embed.FS

// options holds the parsed command line
type options struct {
	game   string
	field  string
	record string
	replay string
	seed   int64
	verify bool
	mute   bool
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.game, "game", "", "Start a game directly: adventure or soccer (default: menu)")
	flag.StringVar(&o.field, "field", string(soccer.FieldClassic), "Soccer field: classic, amazon or futuristic")
	flag.StringVar(&o.record, "record", "", "Record adventure input to file (e.g., -record replay.json, or auto)")
	flag.StringVar(&o.replay, "replay", "", "Play back a recorded adventure run")
	flag.Int64Var(&o.seed, "seed", 0, "World seed (default: config seed, then the clock)")
	flag.BoolVar(&o.verify, "verify", false, "With -replay, run the recording headless and print the outcome")
	flag.BoolVar(&o.mute, "mute", false, "Disable sound")
	flag.Parse()
	if o.record == "auto" {
		o.record = replay.GenerateFilename()
	}
	return o
}

// app builds scenes from the loaded configs
type app struct {
	opts      options
	adventure *config.AdventureConfig
	soccer    *config.SoccerConfig
	replay    *replay.ReplayData
	log       *logrus.Entry
}

func main() {
	logger.Init()
	log := logger.Component("main")

	if err := run(parseFlags(), log); err != nil {
		log.WithError(err).Fatal("Game exited with error")
	}
}

func run(opts options, log *logrus.Entry) error {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return fmt.Errorf("failed to get config subfs: %w", err)
	}
	loader := config.NewFSLoader(fsys)

	a := &app{opts: opts, log: log}
	if a.adventure, err = loader.LoadAdventure(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.soccer, err = loader.LoadSoccer(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.replay != "" {
		if a.replay, err = replay.LoadReplay(opts.replay); err != nil {
			return err
		}
	}

	if opts.verify {
		if a.replay == nil {
			return errors.New("-verify needs -replay")
		}
		summary, err := verifyReplay(a.adventure, a.replay)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, summary)
		return nil
	}

	first, err := a.firstScene()
	if err != nil {
		return err
	}

	g := game.New(first, int(a.adventure.Viewport.Width), int(a.adventure.Viewport.Height))
	defer g.Close()

	ebiten.SetWindowSize(int(a.adventure.Viewport.Width), int(a.adventure.Viewport.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Arcade")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (a *app) firstScene() (scene.Scene, error) {
	switch {
	case a.replay != nil:
		return a.newAdventure()
	case a.opts.game == "adventure":
		return a.newAdventure()
	case a.opts.game == "soccer":
		field, err := soccer.ParseField(a.opts.field)
		if err != nil {
			return nil, err
		}
		return a.newPitch(field)
	case a.opts.game == "":
		return a.newMenu(), nil
	default:
		return nil, fmt.Errorf("unknown game %q", a.opts.game)
	}
}

func (a *app) newMenu() scene.Scene {
	items := []menu.Item{{Label: "Adventure", Open: a.newAdventure}}
	for _, f := range soccer.Fields() {
		items = append(items, menu.Item{
			Label: "Soccer - " + string(f),
			Open:  func() (scene.Scene, error) { return a.newPitch(f) },
		})
	}
	return menu.New("ARCADE", items)
}

func (a *app) newAdventure() (scene.Scene, error) {
	s, err := adventure.New(adventure.Options{
		Config:     a.adventure,
		Seed:       a.seed(),
		RecordPath: a.opts.record,
		Replay:     a.replay,
		Back:       a.newMenu,
		Mute:       a.opts.mute,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) newPitch(field soccer.Field) (scene.Scene, error) {
	s, err := pitch.New(pitch.Options{
		Config: a.soccer,
		Field:  field,
		Back:   a.newMenu,
		Mute:   a.opts.mute,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// seed picks the flag, then the config, then the clock
func (a *app) seed() int64 {
	switch {
	case a.opts.seed != 0:
		return a.opts.seed
	case a.adventure.Seed != 0:
		return a.adventure.Seed
	}
	seed := time.Now().UnixNano()
	a.log.WithField("seed", seed).Info("Seeded from clock")
	return seed
}
