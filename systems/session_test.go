package systems

import (
	"errors"
	"testing"

	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/leveldata"
)

func TestLoadPlacesPlayerOnSpawn(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	f := ts.Snapshot()

	if f.Started || f.IrisOpen {
		t.Errorf("started=%v irisOpen=%v after load, want both false", f.Started, f.IrisOpen)
	}
	p := f.Player
	if p.X != 24 || p.Y != 72 || p.VX != 90 {
		t.Errorf("player at (%v,%v) vx %v, want (24,72) vx 90", p.X, p.Y, p.VX)
	}
	if p.Status != components.StatusAlive || p.Gravity != 1 || p.Boost != 1 {
		t.Errorf("player = %+v", p)
	}
	if f.State.CurrentState != cfg.Idle {
		t.Errorf("state = %v, want idle", f.State.CurrentState)
	}
	if !ts.audio.played("music", cfg.MusicLevel) {
		t.Error("level music not started")
	}
}

func TestNothingMovesBeforeStart(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	before := ts.player()
	for i := 0; i < 120; i++ {
		ts.Update(testDT)
	}
	if after := ts.player(); after.Body != before.Body {
		t.Errorf("player moved before start: %+v -> %+v", before.Body, after.Body)
	}
}

func TestIrisHoldsPhysics(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.tapRight()
	if !ts.Snapshot().Started {
		t.Fatal("first tap did not start the level")
	}

	ts.Update(testDT)
	f := ts.Snapshot()
	if f.IrisOpen {
		t.Fatal("iris open after one step")
	}
	if f.Player.X != 24 {
		t.Errorf("player moved while the iris opens: x = %v", f.Player.X)
	}
	if f.IrisRadius <= cfg.Session.IrisStart {
		t.Errorf("iris radius = %v, want growth past %v", f.IrisRadius, cfg.Session.IrisStart)
	}
}

func TestRunIntoSpike(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)
	ts.runUntil(t, 500, over)

	f := ts.Snapshot()
	if f.Player.Status != components.StatusDead {
		t.Fatalf("status = %v, want dead", f.Player.Status)
	}
	if f.Player.X+cfg.Player.Width < 120 {
		t.Errorf("died at x = %v, before the spike", f.Player.X)
	}
	if f.Profile.DeathsCurrentLevel != 1 || f.Profile.DeathsTotal != 1 {
		t.Errorf("deaths = %d/%d, want 1/1", f.Profile.DeathsCurrentLevel, f.Profile.DeathsTotal)
	}
	if f.State.CurrentState != cfg.Dying {
		t.Errorf("state = %v, want dying", f.State.CurrentState)
	}
	if f.Fade != components.FadeDeath {
		t.Errorf("fade = %v, want death fade", f.Fade)
	}
	if ts.progress.last().DeathsTotal != 1 {
		t.Error("death not saved")
	}
	if !ts.audio.played("effect", cfg.SoundDeath) || !ts.audio.played("pausemusic", cfg.SoundNone) {
		t.Errorf("death sounds missing: %+v", ts.audio.calls)
	}

	x := f.Player.X
	for i := 0; i < 30; i++ {
		ts.Update(testDT)
	}
	if got := ts.player().X; got != x {
		t.Errorf("dead player moved from %v to %v", x, got)
	}
}

func TestFloorSpikeKillsOnFirstContact(t *testing.T) {
	ts := newTestSession(t, floorSpikeStage(t))
	ts.startRunning(t)

	const spikeLeft = 120
	for i := 0; i < 1000; i++ {
		before := ts.player()
		ts.Update(testDT)
		p := ts.player()

		right := p.X + cfg.Player.Width
		if p.Status == components.StatusDead {
			if right < spikeLeft {
				t.Errorf("died at right edge %v, before the spike at %v", right, spikeLeft)
			}
			if before.X+cfg.Player.Width >= spikeLeft {
				t.Errorf("survived a step with right edge %v over the spike", before.X+cfg.Player.Width)
			}
			return
		}
		if right >= spikeLeft {
			t.Fatalf("alive with right edge %v over the spike", right)
		}
	}
	t.Fatal("player never reached the spike")
}

func TestSpikeDeathIsReproducible(t *testing.T) {
	run := func() components.PlayerData {
		ts := newTestSession(t, spikeStage(t))
		ts.startRunning(t)
		ts.runUntil(t, 500, over)
		return ts.player()
	}
	if a, b := run(), run(); a.Body != b.Body {
		t.Errorf("runs differ: %+v vs %+v", a.Body, b.Body)
	}
}

func TestRetryAfterDeath(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)
	ts.runUntil(t, 500, over)

	ts.tapLeft()
	f := ts.Snapshot()
	if f.Player.Status != components.StatusAlive {
		t.Fatalf("status after retry = %v, want alive", f.Player.Status)
	}
	if f.Player.X != 24 || f.Player.Y != 72 || f.Player.Gravity != 1 {
		t.Errorf("player not back on spawn: %+v", f.Player.Body)
	}
	if f.State.CurrentState != cfg.Wakeup || f.State.Invisible {
		t.Errorf("state = %v invisible=%v, want visible wakeup", f.State.CurrentState, f.State.Invisible)
	}
	if f.Fade != components.FadeNone {
		t.Errorf("fade = %v after retry", f.Fade)
	}
	if f.Profile.DeathsCurrentLevel != 1 {
		t.Errorf("retry changed deaths to %d", f.Profile.DeathsCurrentLevel)
	}
	if !ts.audio.played("resumemusic", cfg.SoundNone) {
		t.Error("music not resumed")
	}
}

func TestFinishLastLevel(t *testing.T) {
	ts := newTestSession(t, finishStage(t))
	ts.startRunning(t)
	ts.runUntil(t, 500, over)

	f := ts.Snapshot()
	if f.Player.Status != components.StatusFinished {
		t.Fatalf("status = %v, want finished", f.Player.Status)
	}
	if !f.Completed {
		t.Error("last level finished but session not completed")
	}
	if f.Profile.CurrentLevel != 1 || f.Profile.DeathsCurrentLevel != 0 {
		t.Errorf("profile = %+v, want level 1 with no deaths", f.Profile)
	}
	if len(ts.progress.scores) != 1 {
		t.Fatalf("highscores = %+v, want one", ts.progress.scores)
	}
	if h := ts.progress.scores[0]; h.Name != "tester" || h.Level != 0 || h.Deaths != 0 {
		t.Errorf("highscore = %+v", h)
	}

	ts.tapRight()
	if !ts.Exited() {
		t.Error("tap after the last level did not exit")
	}
}

func TestFinishRecordsDeathsBeforeReset(t *testing.T) {
	ts := newTestSession(t, finishStage(t))
	ts.startRunning(t)
	ts.kill()
	ts.tapLeft()
	if ts.player().Status != components.StatusAlive {
		t.Fatal("retry did not revive the player")
	}
	ts.runUntil(t, 500, over)

	f := ts.Snapshot()
	if f.Player.Status != components.StatusFinished {
		t.Fatalf("status = %v, want finished", f.Player.Status)
	}
	if len(ts.progress.scores) != 1 || ts.progress.scores[0].Deaths != 1 {
		t.Fatalf("highscores = %+v, want one run with 1 death", ts.progress.scores)
	}
	if f.Profile.DeathsCurrentLevel != 0 || f.Profile.CurrentLevel != 1 || f.Profile.DeathsTotal != 1 {
		t.Errorf("profile = %+v, want level 1, no level deaths, 1 total", f.Profile)
	}
}

func TestFinishDoesNotLoadLevels(t *testing.T) {
	for _, n := range []int{1, 2} {
		stages := memSource{finishStage(t), finishStage(t)}[:n]
		src := &countingSource{memSource: stages}
		s := NewSession(src, nil, nil, SessionOptions{ScreenWidth: 640, ScreenHeight: 360})
		if err := s.Load(0); err != nil {
			t.Fatalf("Load(0): %v", err)
		}
		ts := &testSession{Session: s, audio: &fakeAudio{}, progress: &fakeProgress{}}
		ts.startRunning(t)

		src.loads = nil
		ts.runUntil(t, 500, over)
		if len(src.loads) != 0 {
			t.Errorf("%d levels: Update loaded %v", n, src.loads)
		}
		if got, want := ts.Completed(), n == 1; got != want {
			t.Errorf("%d levels: completed = %v, want %v", n, got, want)
		}
	}
}

func TestFinishAdvancesToNextLevel(t *testing.T) {
	next := spikeStage(t)
	ts := newTestSession(t, finishStage(t), next)
	ts.startRunning(t)
	ts.runUntil(t, 500, over)

	if ts.Completed() {
		t.Fatal("completed with a level left")
	}
	ts.tapRight()

	f := ts.Snapshot()
	if f.Stage != next || f.StageIndex != 1 {
		t.Fatalf("stage index = %d, want 1", f.StageIndex)
	}
	if f.Started || f.Player.Status != components.StatusAlive {
		t.Errorf("next level started=%v status=%v", f.Started, f.Player.Status)
	}
}

func TestBackAbandonsRunningLevel(t *testing.T) {
	ts := newTestSession(t, finishStage(t))
	ts.startRunning(t)
	ts.OnBack()
	ts.OnBack()
	if !ts.Exited() {
		t.Fatal("back twice did not exit")
	}
	if got := ts.Profile().DeathsCurrentLevel; got != 1 {
		t.Errorf("abandon deaths = %d, want 1", got)
	}
}

func TestInputLockTakesControl(t *testing.T) {
	stage := buildStage(t, 12, 3, map[[2]int]leveldata.Tile{
		{5, 1}:  leveldata.TileNoInput,
		{11, 1}: leveldata.TileFinish,
	})
	ts := newTestSession(t, stage)
	ts.startRunning(t)
	ts.runUntil(t, 500, func(f Frame) bool { return f.Player.Status != components.StatusAlive })

	f := ts.Snapshot()
	if f.Player.Status != components.StatusInputLocked {
		t.Fatalf("status = %v, want input locked", f.Player.Status)
	}
	if f.Fade != components.FadeInputLock {
		t.Errorf("fade = %v, want input lock fade", f.Fade)
	}
	if !ts.audio.played("effect", cfg.MusicFinish) {
		t.Error("finish jingle not played at input lock")
	}

	ts.tapRight()
	ts.tapLeft()
	if p := ts.player(); p.VY != 0 || p.Gravity != 1 || p.InAir() {
		t.Errorf("taps changed a locked player: %+v", p)
	}

	ts.runUntil(t, 500, over)
	if got := ts.player().Status; got != components.StatusFinished {
		t.Errorf("status = %v, want finished", got)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)

	ts.tapRight()
	p := ts.player()
	if p.VY != -cfg.Player.JumpImpulse || !p.InAir() {
		t.Fatalf("after jump vy=%v inAir=%v", p.VY, p.InAir())
	}
	if !ts.audio.played("effect", cfg.SoundJump) {
		t.Error("jump sound missing")
	}

	ts.tapRight()
	if got := ts.player().VY; got != p.VY {
		t.Errorf("second jump in the air changed vy to %v", got)
	}
}

func TestGravityFlipOncePerAirTime(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)

	ts.tapRight()
	ts.tapLeft()
	p := ts.player()
	if p.Gravity != -1 || p.CanFlip() {
		t.Fatalf("after flip gravity=%v canFlip=%v", p.Gravity, p.CanFlip())
	}
	if ts.Snapshot().State.CurrentState != cfg.Gravity {
		t.Errorf("state = %v, want gravity", ts.Snapshot().State.CurrentState)
	}

	ts.tapLeft()
	if got := ts.player().Gravity; got != -1 {
		t.Errorf("second flip in the air set gravity %v", got)
	}
}

func TestGroundedFlipUsesToken(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)

	ts.tapLeft()
	p := ts.player()
	if p.Gravity != -1 || p.Footing != components.FootingAirborneFlipped {
		t.Errorf("grounded flip: gravity=%v footing=%v", p.Gravity, p.Footing)
	}
	if !ts.audio.played("effect", cfg.SoundGravityUp) {
		t.Error("gravity sound missing")
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)
	before := ts.Snapshot()

	err := ts.Load(3)
	if !errors.Is(err, leveldata.ErrNoSuchLevel) {
		t.Fatalf("Load(3) error = %v, want ErrNoSuchLevel", err)
	}
	if !ts.LoadFailed() || !errors.Is(ts.LoadErr(), leveldata.ErrNoSuchLevel) {
		t.Errorf("LoadFailed=%v LoadErr=%v", ts.LoadFailed(), ts.LoadErr())
	}

	after := ts.Snapshot()
	if after.Stage != before.Stage || after.StageIndex != 0 {
		t.Errorf("stage changed after failed load")
	}
	if after.Player.Body != before.Player.Body || !after.Started {
		t.Errorf("session state changed after failed load")
	}
}

func TestReloadRestartsLevel(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)
	ts.runUntil(t, 500, over)

	if err := ts.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	f := ts.Snapshot()
	if f.Started || f.Player.Status != components.StatusAlive || f.Player.X != 24 {
		t.Errorf("reload left started=%v status=%v x=%v", f.Started, f.Player.Status, f.Player.X)
	}
	if f.Profile.DeathsCurrentLevel != 1 {
		t.Errorf("reload of the same level reset deaths to %d", f.Profile.DeathsCurrentLevel)
	}
}

func TestLargeDeltaIsClamped(t *testing.T) {
	ts := newTestSession(t, spikeStage(t))
	ts.startRunning(t)

	x := ts.player().X
	ts.Update(10)
	want := x + 90*cfg.Physics.MaxFrameDelta
	if got := ts.player().X; got != want {
		t.Errorf("x after huge frame = %v, want %v", got, want)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	stage := buildStage(t, 80, 5, nil)
	ts := newTestSession(t, stage)
	ts.startRunning(t)
	ts.runUntil(t, 2000, func(f Frame) bool { return f.Player.X > 600 })

	f := ts.Snapshot()
	want := f.Player.X - cfg.Camera.LeadRight
	if f.OffsetX != want {
		t.Errorf("offsetX = %v, want %v", f.OffsetX, want)
	}
	if f.OffsetY != 0 {
		t.Errorf("offsetY = %v, want 0 for a level shorter than the screen", f.OffsetY)
	}
}
