package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	layerWorld ecs.LayerID = iota
	layerHUD
)

// frameData holds the snapshot drawn by the renderers.
var frameData = donburi.NewComponentType[systems.Frame]()

// GameScene runs a session on ebiten's loop. The mutex spans the session
// update and the snapshot taken for drawing.
type GameScene struct {
	mu      sync.Mutex
	ecs     *ecs.ECS
	session *systems.Session
	watcher *systems.LevelWatcher
	frame   *donburi.Entry
	once    sync.Once
}

func NewGameScene(session *systems.Session, watcher *systems.LevelWatcher) *GameScene {
	return &GameScene{session: session, watcher: watcher}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	gs.once.Do(gs.configure)

	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.ecs.Draw(screen)
}

// Done reports whether the player left the game.
func (gs *GameScene) Done() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.session.Exited()
}

func (gs *GameScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(gs.updateReload)
	e.AddSystem(gs.updateInput)
	e.AddSystem(gs.updateSession)

	e.AddRenderer(layerWorld, DrawStage)
	e.AddRenderer(layerWorld, DrawPlayer)
	e.AddRenderer(layerWorld, DrawDebug)
	e.AddRenderer(layerHUD, DrawIris)
	e.AddRenderer(layerHUD, DrawHUD)
	e.AddRenderer(layerHUD, DrawOverlay)

	gs.frame = e.World.Entry(e.World.Create(frameData))
	frameData.SetValue(gs.frame, gs.session.Snapshot())
	gs.ecs = e
}

func (gs *GameScene) updateSession(e *ecs.ECS) {
	gs.session.Update(1 / float64(cfg.C.TPS))
	frameData.SetValue(gs.frame, gs.session.Snapshot())
}

// updateReload reloads the current level when its file changed on disk.
func (gs *GameScene) updateReload(e *ecs.ECS) {
	if gs.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-gs.watcher.Events:
			if !ok {
				gs.watcher = nil
				return
			}
			log.Printf("Level file changed: %s", name)
			if err := gs.session.Reload(); err != nil {
				log.Printf("Warning: Could not reload level: %v", err)
			}
		case err, ok := <-gs.watcher.Errors:
			if ok {
				log.Printf("Warning: Level watcher error: %v", err)
			}
		default:
			return
		}
	}
}
