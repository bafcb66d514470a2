// Command escape-sim runs levels without a window: a scripted tap list on
// a fixed step, or an interactive terminal view.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/escape/assets/levels"
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/leveldata"
	"github.com/automoto/escape/systems"
	"github.com/gdamore/tcell/v2"
)

func main() {
	level := flag.Int("level", 0, "level index to run")
	levelsDir := flag.String("levels", "", "read levels from this directory instead of the built-in set")
	tuning := flag.String("config", "", "YAML tuning file")
	script := flag.String("taps", "", `scripted input, e.g. "0:jump,120:flip,300:480/200"`)
	autostart := flag.Bool("autostart", true, "tap once at step 0 to start the level")
	steps := flag.Int("steps", 3600, "maximum number of updates")
	tui := flag.Bool("tui", false, "play interactively in the terminal")
	scores := flag.Bool("scores", false, "print the saved highscores of -level and exit")
	save := flag.Bool("save", false, "persist progress like the game does")
	appName := flag.String("app", "escape", "name of the save data directory")
	name := flag.String("name", "sim", "player name recorded with highscores")
	flag.Parse()

	if *tuning != "" {
		if err := cfg.LoadOverrides(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var persister *systems.Persister
	if *save || *scores {
		store, err := systems.OpenStore(*appName)
		if err != nil {
			log.Fatalf("Failed to open save data: %v", err)
		}
		persister = systems.NewPersister(ctx, store, 0)
		defer persister.Close()
	}

	if *scores {
		if err := printScores(ctx, persister, *level); err != nil {
			log.Fatalf("Failed to read highscores: %v", err)
		}
		return
	}

	var src leveldata.Source = levels.Builtin()
	if *levelsDir != "" {
		src = levels.FromDir(*levelsDir)
	}

	profile := components.ProfileData{Name: *name}
	var progress systems.ProgressSink
	if persister != nil {
		progress = persister
		if saved, err := persister.LoadProfile(ctx); err != nil {
			log.Printf("Warning: Could not load profile: %v", err)
		} else if saved != nil {
			profile = *saved
			profile.Name = *name
		}
	}

	session := systems.NewSession(src, nil, progress, systems.SessionOptions{Profile: profile})
	if err := session.Load(*level); err != nil {
		log.Fatalf("Failed to load level %d: %v", *level, err)
	}

	if *tui {
		if err := runTUI(ctx, session); err != nil {
			log.Fatalf("Terminal view failed: %v", err)
		}
		return
	}

	taps, err := ParseScript(*script)
	if err != nil {
		log.Fatalf("Invalid -taps: %v", err)
	}
	if *autostart {
		taps = append([]Tap{{Step: 0, Action: ActionJump}}, taps...)
	}

	n := simulate(session, taps, *steps, 1/float64(cfg.C.TPS))
	printResult(session.Snapshot(), n)
}

func printResult(f systems.Frame, steps int) {
	name := ""
	if f.Stage != nil {
		name = f.Stage.Name
	}
	fmt.Printf("level %d %q: %s after %d steps\n", f.StageIndex, name, f.Player.Status, steps)
	fmt.Printf("  position (%.1f, %.1f) velocity %.1f boost %.2f gravity %+.0f\n",
		f.Player.X, f.Player.Y, f.Player.VX, f.Player.Boost, f.Player.Gravity)
	fmt.Printf("  deaths %d this level, %d total\n", f.Profile.DeathsCurrentLevel, f.Profile.DeathsTotal)
	if f.Completed {
		fmt.Println("  all levels complete")
	}
}

func printScores(ctx context.Context, p *systems.Persister, level int) error {
	scores, err := p.Highscores(ctx, level)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		fmt.Printf("no highscores for level %d\n", level)
		return nil
	}
	fmt.Printf("level %d highscores\n", level)
	for i, h := range scores {
		fmt.Printf("%3d. %-16s %d deaths\n", i+1, h.Name, h.Deaths)
	}
	return nil
}

// runTUI plays the session on the realtime loop until the player exits or
// ctx is cancelled.
func runTUI(ctx context.Context, session *systems.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	loop := systems.NewLoop(session, &termRenderer{screen: screen}, cfg.C.TPS)
	loop.Start(ctx)
	defer loop.Stop()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-loop.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			if key.Key() == tcell.KeyCtrlC {
				return nil
			}
			if action, ok := keyAction(key); ok {
				loop.Do(func(s *systems.Session) { apply(s, Tap{Action: action}) })
			}
		}
	}
}
