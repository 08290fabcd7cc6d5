package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/tmx-explorer/assets/animations"
	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/shared/behavior"
	"github.com/automoto/tmx-explorer/shared/gamemath"
	"github.com/automoto/tmx-explorer/shared/pathfinding"
	"github.com/automoto/tmx-explorer/shared/world"
	"github.com/automoto/tmx-explorer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// created on first use so a -seed flag is honoured
var rng *rand.Rand

// UpdateCharacters sets velocities from input (player) or steering (NPCs),
// then moves every character through the collision volume. Characters block
// each other when their footprints and height spans overlap.
func UpdateCharacters(e *ecs.ECS) {
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	w := components.World.Get(worldEntry).World.World
	dt := 1.0 / float64(cfg.C.TPS)
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Debug.Seed))
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		ch := components.Character.Get(playerEntry)
		dx, dy, dz := moveAxes(getOrCreateInput(e))
		ch.VX, ch.VY, ch.VZ = gamemath.MoveVelocity(dx, dy, dz, ch.Speed, cfg.Character.VerticalScale)
	}

	tags.NPC.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		npc := components.NPC.Get(entry)
		target := followTarget(e, npc.Target)
		if npc.Steering.Kind == behavior.Follow {
			routeToTarget(w, ch, npc, &target)
		}
		ch.VX, ch.VY = npc.Steering.Steer(dt, ch.X, ch.Y, ch.VX, ch.VY, target, behavior.DefaultTuning, rng)
	})

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		obj := components.Object.Get(entry).Object

		m := world.Mover{X: ch.X, Y: ch.Y, Z: ch.Z, VX: ch.VX, VY: ch.VY, VZ: ch.VZ, Footprint: ch.Footprint}
		walking := w.Step(&m, dt, occupiedBy(obj, ch))
		ch.X, ch.Y, ch.Z = m.X, m.Y, m.Z

		obj.X = ch.X - obj.W/2
		obj.Y = ch.Y - obj.H/2
		obj.Update()

		updateWalkAnimation(ch, walking)
	})
}

// occupiedBy reports whether obj, moved so its centre sits at (x, y), would
// overlap another character whose height span meets ch's.
func occupiedBy(obj *resolv.Object, ch *components.CharacterData) world.OccupiedFunc {
	return func(x, y float64) bool {
		dx := x - obj.W/2 - obj.X
		dy := y - obj.H/2 - obj.Y
		check := obj.Check(dx, dy, tags.ResolvCharacter)
		if check == nil {
			return false
		}
		for _, other := range check.ObjectsByTags(tags.ResolvCharacter) {
			if !rectsOverlap(obj.X+dx, obj.Y+dy, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
				continue
			}
			// Characters that already overlap may walk apart.
			if rectsOverlap(obj.X, obj.Y, obj.W, obj.H, other.X, other.Y, other.W, other.H) {
				continue
			}
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || !otherEntry.Valid() {
				continue
			}
			oc := components.Character.Get(otherEntry)
			if spansOverlap(ch.Z, ch.Footprint.Height, oc.Z, oc.Footprint.Height) {
				return true
			}
		}
		return false
	}
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

func spansOverlap(z1, h1, z2, h2 float64) bool {
	return z1 < z2+math.Max(h2, 1e-9) && z2 < z1+math.Max(h1, 1e-9)
}

func followTarget(e *ecs.ECS, name string) behavior.Target {
	var target behavior.Target
	if name == "" {
		if entry, ok := tags.Player.First(e.World); ok {
			ch := components.Character.Get(entry)
			target = behavior.Target{X: ch.X, Y: ch.Y, OK: true}
		}
		return target
	}
	components.Character.Each(e.World, func(entry *donburi.Entry) {
		if ch := components.Character.Get(entry); !target.OK && ch.Name == name {
			target = behavior.Target{X: ch.X, Y: ch.Y, OK: true}
		}
	})
	return target
}

// navGrids caches one grid per height index of the current world.
var (
	navWorld *world.World
	navGrids map[int]*pathfinding.NavGrid
)

func navGrid(w *world.World, z int) *pathfinding.NavGrid {
	if navWorld != w {
		navWorld = w
		navGrids = make(map[int]*pathfinding.NavGrid)
	}
	g, ok := navGrids[z]
	if !ok {
		g = pathfinding.NewNavGrid(w.Collision, z, w.TileWidth, w.TileHeight)
		navGrids[z] = g
	}
	return g
}

// routeToTarget keeps the NPC's route to its target fresh and points the
// target's waypoint at the next cell on it.
func routeToTarget(w *world.World, ch *components.CharacterData, npc *components.NPCData, target *behavior.Target) {
	if !target.OK {
		npc.Route = nil
		return
	}
	npc.RepathIn--
	if npc.RepathIn <= 0 {
		z := min(max(int(math.Floor(ch.Z)), 0), w.Index.H-1)
		npc.Route = navGrid(w, z).FindPath(ch.X, ch.Y, target.X, target.Y)
		npc.RepathIn = cfg.Pathfinding.RepathFrames
	}
	for len(npc.Route) > 0 && math.Hypot(npc.Route[0].X-ch.X, npc.Route[0].Y-ch.Y) < behavior.DefaultTuning.ArriveDistance {
		npc.Route = npc.Route[1:]
	}
	if len(npc.Route) > 0 {
		target.ViaX, target.ViaY, target.Via = npc.Route[0].X, npc.Route[0].Y, true
	}
}

func updateWalkAnimation(ch *components.CharacterData, walking bool) {
	ch.Facing = animations.DirectionFromVelocity(ch.VX, ch.VY, ch.Facing)
	if !walking {
		if ch.Walking {
			ch.Walk.Restart()
		}
		ch.Walking = false
		return
	}
	ch.Walking = true
	ch.Walk.Update()
}
