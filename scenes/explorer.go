package scenes

import (
	"image/color"
	"log"
	"slices"
	"sync"

	"github.com/automoto/tmx-explorer/assets"
	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/shared/leveldata"
	"github.com/automoto/tmx-explorer/systems"
	"github.com/automoto/tmx-explorer/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ExplorerScene shows one map with its levels stacked and lets the player
// walk through it.
type ExplorerScene struct {
	ecs     *ecs.ECS
	world   *assets.World
	cache   *assets.ResourceCache
	mapPath string
	saved   *systems.SavedSettings
	once    sync.Once
}

// NewExplorerScene creates the scene for an already loaded world. saved may
// be nil.
func NewExplorerScene(w *assets.World, cache *assets.ResourceCache, mapPath string, saved *systems.SavedSettings) *ExplorerScene {
	return &ExplorerScene{world: w, cache: cache, mapPath: mapPath, saved: saved}
}

func (s *ExplorerScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

// Done reports whether the user asked to quit. Settings are saved first.
func (s *ExplorerScene) Done() bool {
	if s.ecs == nil {
		return false
	}
	entry, ok := components.Viewer.First(s.ecs.World)
	if !ok || !components.Viewer.Get(entry).Quit {
		return false
	}
	systems.SaveCurrentSettings(s.ecs)
	return true
}

func (s *ExplorerScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *ExplorerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateViewer)
	ecs.AddSystem(systems.UpdateCharacters)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePersistence)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawGrid)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	s.ecs = ecs
	systems.CacheSize = s.cache.Len

	factory.CreateWorld(s.ecs, s.world)
	factory.CreateViewer(s.ecs, s.world, s.mapPath)

	pw, ph := s.world.PixelSize()
	spaceEntry := factory.CreateSpace(s.ecs, pw, ph, cfg.Character.SpaceCell, cfg.Character.SpaceCell)
	space := components.Space.Get(spaceEntry)

	spawns := s.world.Spawns
	if !slices.ContainsFunc(spawns, func(sp leveldata.SpawnPoint) bool { return sp.Player }) {
		x, y, ok := s.world.FindOpenSpot(0, factory.CharacterFootprint())
		if !ok {
			log.Printf("Warning: %s has no free spot for the player; starting at the origin", s.mapPath)
		}
		spawns = append([]leveldata.SpawnPoint{{Name: "player", Player: true, X: x, Y: y}}, spawns...)
	}

	camX, camY := float64(pw)/2, float64(ph)/2
	for _, sp := range spawns {
		if z := s.world.ClampHeight(sp.Z); sp.Player && !s.world.CanMoveTo(sp.X, sp.Y, z, factory.CharacterFootprint()) {
			if x, y, ok := s.world.FindOpenSpot(z, factory.CharacterFootprint()); ok {
				log.Printf("Warning: player spawn is blocked; moved to (%.0f, %.0f)", x, y)
				sp.X, sp.Y = x, y
			}
		}
		entry, err := factory.CreateCharacter(s.ecs, s.world, s.cache, space, sp)
		if err != nil {
			log.Printf("Warning: skipping spawn %q: %v", sp.Name, err)
			continue
		}
		if sp.Player {
			ch := components.Character.Get(entry)
			camX, camY = ch.X, ch.Y
		}
	}

	factory.CreateCamera(s.ecs, camX, camY)
	systems.ApplySavedSettings(s.ecs, s.saved)
	systems.FitCamera(s.ecs, false)
}
