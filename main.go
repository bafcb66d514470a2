package main

import (
	"context"
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/escape/assets"
	"github.com/automoto/escape/assets/levels"
	"github.com/automoto/escape/components"
	"github.com/automoto/escape/config"
	"github.com/automoto/escape/fonts"
	"github.com/automoto/escape/scenes"
	"github.com/automoto/escape/shared/leveldata"
	"github.com/automoto/escape/sound"
	"github.com/automoto/escape/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	if g.scene.Done() {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.Int("level", -1, "level to start at (-1 resumes the saved profile)")
	tuning := flag.String("config", "", "YAML tuning file")
	appName := flag.String("app", "escape", "name of the save data directory")
	name := flag.String("name", "", "player name recorded with highscores")
	levelsDir := flag.String("levels", "", "read levels from this directory instead of the built-in set")
	flag.BoolVar(&config.Debug.ShowGrid, "debug", false, "draw the tile grid and collision box")
	flag.BoolVar(&config.Debug.WatchLevels, "watch", false, "reload the level when its file changes (needs -levels)")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadOverrides(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	if err := fonts.LoadDefaults(config.UI.FontSize, config.UI.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Persistence is optional; without a store progress is simply not kept
	var progress systems.ProgressSink
	profile := components.ProfileData{Name: *name}
	if store, err := systems.OpenStore(*appName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		persister := systems.NewPersister(ctx, store, 0)
		defer persister.Close()
		progress = persister

		saved, err := persister.LoadProfile(ctx)
		switch {
		case err != nil:
			log.Printf("Warning: Could not load profile: %v", err)
		case saved != nil:
			profile = *saved
			if *name != "" {
				profile.Name = *name
			}
		}
	}

	audio := sound.NewManager()
	if err := audio.Init(); err != nil {
		log.Printf("Warning: Could not initialize audio: %v", err)
	}
	defer audio.Close()
	audio.SetVolumes(config.Audio.DefaultMusicVol, config.Audio.DefaultSFXVol)

	var stages leveldata.Source = levels.Builtin()
	if *levelsDir != "" {
		stages = levels.FromDir(*levelsDir)
	}

	session := systems.NewSession(stages, audio, progress, systems.SessionOptions{Profile: profile})

	start := *level
	if start < 0 {
		start = profile.CurrentLevel
	}
	if err := session.Load(start); err != nil {
		if !errors.Is(err, leveldata.ErrNoSuchLevel) || start == 0 {
			log.Fatalf("Failed to load level %d: %v", start, err)
		}
		// Every level was beaten; play the first one again
		if err := session.Load(0); err != nil {
			log.Fatalf("Failed to load level 0: %v", err)
		}
	}

	var watcher *systems.LevelWatcher
	if config.Debug.WatchLevels && *levelsDir != "" {
		w, err := systems.NewLevelWatcher(*levelsDir)
		if err != nil {
			log.Printf("Warning: Could not watch levels: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Escape")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	g := &Game{scene: scenes.NewGameScene(session, watcher)}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
