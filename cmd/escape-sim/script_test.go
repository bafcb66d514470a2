package main

import (
	"testing"

	"github.com/automoto/escape/components"
	"github.com/automoto/escape/shared/leveldata"
	"github.com/automoto/escape/systems"
)

func TestParseScript(t *testing.T) {
	taps, err := ParseScript("120:flip, 0:jump,300:480/200,120:back")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	want := []Tap{
		{Step: 0, Action: ActionJump},
		{Step: 120, Action: ActionFlip},
		{Step: 120, Action: ActionBack},
		{Step: 300, Action: ActionTap, X: 480, Y: 200},
	}
	if len(taps) != len(want) {
		t.Fatalf("taps = %+v, want %+v", taps, want)
	}
	for i := range want {
		if taps[i] != want[i] {
			t.Errorf("taps[%d] = %+v, want %+v", i, taps[i], want[i])
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, script := range []string{"jump", "x:jump", "-1:jump", "5:dance", "5:1/y"} {
		if _, err := ParseScript(script); err == nil {
			t.Errorf("ParseScript(%q) succeeded, want error", script)
		}
	}
}

func TestParseScriptEmpty(t *testing.T) {
	taps, err := ParseScript("")
	if err != nil || len(taps) != 0 {
		t.Errorf("ParseScript(\"\") = %v, %v", taps, err)
	}
}

type stageSource []*leveldata.Stage

func (s stageSource) Load(index int) (*leveldata.Stage, error) {
	if index < 0 || index >= len(s) {
		return nil, leveldata.ErrNoSuchLevel
	}
	return s[index], nil
}

// spikeStage is a 10x5 grid with a solid floor on row 4 and a spike on
// (5,3), one tile up from the floor.
func spikeStage(t *testing.T) *leveldata.Stage {
	t.Helper()
	tiles := make([]leveldata.Tile, 10*5)
	for x := 0; x < 10; x++ {
		tiles[4*10+x] = leveldata.TileSolid
	}
	tiles[3*10+5] = leveldata.TileDeath

	stage, err := leveldata.NewStage(10, 5, tiles)
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	stage.Name = "spikes"
	stage.SpawnX, stage.SpawnY = 1, 3
	stage.VelocityX = 90
	return stage
}

func TestSimulateRunsIntoSpike(t *testing.T) {
	s := systems.NewSession(stageSource{spikeStage(t)}, nil, nil, systems.SessionOptions{})
	if err := s.Load(0); err != nil {
		t.Fatalf("Load: %v", err)
	}

	n := simulate(s, []Tap{{Step: 0, Action: ActionJump}}, 1000, 1.0/60)
	if n >= 1000 {
		t.Fatalf("simulation did not stop")
	}

	f := s.Snapshot()
	if f.Player.Status != components.StatusDead {
		t.Fatalf("status = %v, want dead", f.Player.Status)
	}
	if f.Player.X+18 < 120 {
		t.Errorf("died at x = %v, before reaching the spike", f.Player.X)
	}
	if f.Profile.DeathsCurrentLevel != 1 || f.Profile.DeathsTotal != 1 {
		t.Errorf("deaths = %d/%d, want 1/1", f.Profile.DeathsCurrentLevel, f.Profile.DeathsTotal)
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() systems.Frame {
		s := systems.NewSession(stageSource{spikeStage(t)}, nil, nil, systems.SessionOptions{})
		if err := s.Load(0); err != nil {
			t.Fatalf("Load: %v", err)
		}
		simulate(s, []Tap{{Step: 0, Action: ActionJump}}, 1000, 1.0/60)
		return s.Snapshot()
	}

	a, b := run(), run()
	if a.Player.Body != b.Player.Body {
		t.Errorf("runs differ: %+v vs %+v", a.Player.Body, b.Player.Body)
	}
}

func TestSimulateBackExits(t *testing.T) {
	s := systems.NewSession(stageSource{spikeStage(t)}, nil, nil, systems.SessionOptions{})
	if err := s.Load(0); err != nil {
		t.Fatalf("Load: %v", err)
	}

	n := simulate(s, []Tap{{Step: 3, Action: ActionBack}}, 100, 1.0/60)
	if n != 4 {
		t.Errorf("steps = %d, want 4", n)
	}
	if !s.Exited() {
		t.Error("session not exited after back before start")
	}
}
