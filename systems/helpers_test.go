package systems

import (
	"sync"
	"testing"

	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/leveldata"
)

const testDT = 1.0 / 60

type soundCall struct {
	op string
	id cfg.SoundID
}

type fakeAudio struct {
	calls []soundCall
	muted bool
}

func (a *fakeAudio) record(op string, id cfg.SoundID) {
	a.calls = append(a.calls, soundCall{op, id})
}

func (a *fakeAudio) PlayEffect(id cfg.SoundID) { a.record("effect", id) }
func (a *fakeAudio) PlayLoop(id cfg.SoundID)   { a.record("loop", id) }
func (a *fakeAudio) StopLoop()                 { a.record("stoploop", cfg.SoundNone) }
func (a *fakeAudio) FadeLoop(float64)          { a.record("fadeloop", cfg.SoundNone) }
func (a *fakeAudio) PlayMusic(id cfg.SoundID)  { a.record("music", id) }
func (a *fakeAudio) PauseMusic()               { a.record("pausemusic", cfg.SoundNone) }
func (a *fakeAudio) ResumeMusic()              { a.record("resumemusic", cfg.SoundNone) }
func (a *fakeAudio) SetMuted(m bool)           { a.muted = m }

func (a *fakeAudio) played(op string, id cfg.SoundID) bool {
	for _, c := range a.calls {
		if c.op == op && c.id == id {
			return true
		}
	}
	return false
}

type fakeProgress struct {
	profiles []components.ProfileData
	scores   []components.Highscore
}

func (p *fakeProgress) SaveProfile(profile components.ProfileData) {
	p.profiles = append(p.profiles, profile)
}

func (p *fakeProgress) RecordHighscore(h components.Highscore) {
	p.scores = append(p.scores, h)
}

func (p *fakeProgress) last() components.ProfileData {
	if len(p.profiles) == 0 {
		return components.ProfileData{}
	}
	return p.profiles[len(p.profiles)-1]
}

type memSource []*leveldata.Stage

func (m memSource) Load(index int) (*leveldata.Stage, error) {
	if index < 0 || index >= len(m) {
		return nil, leveldata.ErrNoSuchLevel
	}
	return m[index], nil
}

// countingSource records every Load it serves.
type countingSource struct {
	memSource
	loads []int
}

func (c *countingSource) Load(index int) (*leveldata.Stage, error) {
	c.loads = append(c.loads, index)
	return c.memSource.Load(index)
}

type memStore struct {
	mu    sync.Mutex
	items map[string][]byte
	saves int
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.err != nil {
		return m.err
	}
	m.items[key] = data
	return nil
}

// buildStage makes a width x height stage with a solid floor on the last
// row, the given extra tiles and a spawn at (1, height-2).
func buildStage(t *testing.T, width, height int, extra map[[2]int]leveldata.Tile) *leveldata.Stage {
	t.Helper()
	tiles := make([]leveldata.Tile, width*height)
	for x := 0; x < width; x++ {
		tiles[(height-1)*width+x] = leveldata.TileSolid
	}
	for pos, tile := range extra {
		tiles[pos[1]*width+pos[0]] = tile
	}

	stage, err := leveldata.NewStage(width, height, tiles)
	if err != nil {
		t.Fatalf("NewStage: %v", err)
	}
	stage.Name = "test"
	stage.SpawnX, stage.SpawnY = 1, height-2
	stage.VelocityX = 90
	return stage
}

// spikeStage is the 10x5 run with a spike one tile above the floor at x=5.
func spikeStage(t *testing.T) *leveldata.Stage {
	return buildStage(t, 10, 5, map[[2]int]leveldata.Tile{{5, 3}: leveldata.TileDeath})
}

// floorSpikeStage is the 10x5 run with a spike set into the floor at x=5,
// run at 50 px/s.
func floorSpikeStage(t *testing.T) *leveldata.Stage {
	stage := buildStage(t, 10, 5, map[[2]int]leveldata.Tile{{5, 4}: leveldata.TileDeath})
	stage.VelocityX = 50
	return stage
}

// finishStage is a 10x3 run ending on a finish tile.
func finishStage(t *testing.T) *leveldata.Stage {
	return buildStage(t, 10, 3, map[[2]int]leveldata.Tile{{9, 1}: leveldata.TileFinish})
}

type testSession struct {
	*Session
	audio    *fakeAudio
	progress *fakeProgress
}

func newTestSession(t *testing.T, stages ...*leveldata.Stage) *testSession {
	t.Helper()
	audio := &fakeAudio{}
	progress := &fakeProgress{}
	s := NewSession(memSource(stages), audio, progress, SessionOptions{
		ScreenWidth:  640,
		ScreenHeight: 360,
		Profile:      components.ProfileData{Name: "tester"},
	})
	if err := s.Load(0); err != nil {
		t.Fatalf("Load(0): %v", err)
	}
	return &testSession{Session: s, audio: audio, progress: progress}
}

func (ts *testSession) tapRight() { ts.OnTouch(480, 180) }
func (ts *testSession) tapLeft()  { ts.OnTouch(160, 180) }

func (ts *testSession) player() components.PlayerData {
	return ts.Snapshot().Player
}

// startRunning starts the level and steps until the iris is open and the
// player stands on the ground.
func (ts *testSession) startRunning(t *testing.T) {
	t.Helper()
	ts.tapRight()
	for i := 0; i < 200; i++ {
		ts.Update(testDT)
		f := ts.Snapshot()
		if f.IrisOpen && !f.Player.InAir() {
			return
		}
	}
	t.Fatal("player never started running")
}

// runUntil steps until done reports true, failing after limit steps.
func (ts *testSession) runUntil(t *testing.T, limit int, done func(Frame) bool) {
	t.Helper()
	for i := 0; i < limit; i++ {
		ts.Update(testDT)
		if done(ts.Snapshot()) {
			return
		}
	}
	t.Fatalf("condition not reached in %d steps", limit)
}

func over(f Frame) bool { return f.Player.Over() }
