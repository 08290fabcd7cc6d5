// Package behavior steers non-player characters. It only produces velocities;
// collision and height handling stay with the movement system.
package behavior

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/automoto/tmx-explorer/shared/leveldata"
)

type Kind int

const (
	Idle Kind = iota
	Wander
	Patrol
	Follow
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Wander:
		return "wander"
	case Patrol:
		return "patrol"
	case Follow:
		return "follow"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a spawn object's behavior property to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "", "idle":
		return Idle, nil
	case "wander":
		return Wander, nil
	case "patrol":
		return Patrol, nil
	case "follow":
		return Follow, nil
	}
	return Idle, fmt.Errorf("unknown behavior %q", s)
}

// Tuning holds the steering constants shared by all NPCs.
type Tuning struct {
	WanderRadius      float64 // pixels from home before walking back
	WanderInterval    float64 // max seconds between direction changes
	PauseChance       float64
	PauseMin          float64 // seconds
	PauseMax          float64
	WanderSpeedMin    float64 // fraction of Speed
	WanderSpeedMax    float64
	ReturnSpeed       float64
	PatrolSpeed       float64
	ArriveDistance    float64 // pixels
	FollowSpeed       float64
	FollowMinDistance float64
}

var DefaultTuning = Tuning{
	WanderRadius:      200,
	WanderInterval:    2,
	PauseChance:       0.3,
	PauseMin:          1,
	PauseMax:          3,
	WanderSpeedMin:    0.3,
	WanderSpeedMax:    0.7,
	ReturnSpeed:       0.5,
	PatrolSpeed:       0.5,
	ArriveDistance:    10,
	FollowSpeed:       0.6,
	FollowMinDistance: 80,
}

// Target is the position a Follow NPC moves toward. When Via is set the NPC
// heads for that waypoint instead, while distance is still measured to X, Y.
type Target struct {
	X, Y       float64
	OK         bool
	ViaX, ViaY float64
	Via        bool
}

// State is the per-NPC steering memory.
type State struct {
	Kind  Kind
	Speed float64 // pixels per second
	HomeX float64
	HomeY float64
	Path  []leveldata.Point

	pathIndex   int
	wanderTimer float64
	idleTimer   float64
	pausing     bool
}

// NewState starts an NPC at its home position.
func NewState(kind Kind, speed, homeX, homeY float64, path []leveldata.Point) *State {
	return &State{Kind: kind, Speed: speed, HomeX: homeX, HomeY: homeY, Path: path}
}

// PathIndex is the patrol waypoint currently targeted.
func (s *State) PathIndex() int { return s.pathIndex }

// Steer advances the NPC's timers by dt seconds and returns its velocity in
// pixels per second. vx and vy are the velocity it had last frame.
func (s *State) Steer(dt, x, y, vx, vy float64, target Target, t Tuning, rng *rand.Rand) (float64, float64) {
	switch s.Kind {
	case Wander:
		return s.wander(dt, x, y, vx, vy, t, rng)
	case Patrol:
		return s.patrol(x, y, t)
	case Follow:
		return s.follow(x, y, target, t)
	default:
		return 0, 0
	}
}

func (s *State) wander(dt, x, y, vx, vy float64, t Tuning, rng *rand.Rand) (float64, float64) {
	if s.pausing {
		s.idleTimer -= dt
		if s.idleTimer > 0 {
			return 0, 0
		}
		s.pausing = false
	}

	s.wanderTimer -= dt
	if s.wanderTimer <= 0 {
		if rng.Float64() < t.PauseChance {
			s.pausing = true
			s.idleTimer = uniform(rng, t.PauseMin, t.PauseMax)
			vx, vy = 0, 0
		} else {
			angle := rng.Float64() * 2 * math.Pi
			speed := s.Speed * uniform(rng, t.WanderSpeedMin, t.WanderSpeedMax)
			vx, vy = math.Cos(angle)*speed, math.Sin(angle)*speed
		}
		s.wanderTimer = uniform(rng, 1, t.WanderInterval)
	}

	dx, dy := s.HomeX-x, s.HomeY-y
	if dist := math.Hypot(dx, dy); dist > t.WanderRadius {
		speed := s.Speed * t.ReturnSpeed
		return dx / dist * speed, dy / dist * speed
	}
	return vx, vy
}

func (s *State) patrol(x, y float64, t Tuning) (float64, float64) {
	if len(s.Path) == 0 {
		return 0, 0
	}
	wp := s.Path[s.pathIndex]
	dx, dy := wp.X-x, wp.Y-y
	dist := math.Hypot(dx, dy)
	if dist < t.ArriveDistance {
		s.pathIndex = (s.pathIndex + 1) % len(s.Path)
		return 0, 0
	}
	speed := s.Speed * t.PatrolSpeed
	return dx / dist * speed, dy / dist * speed
}

func (s *State) follow(x, y float64, target Target, t Tuning) (float64, float64) {
	if !target.OK {
		return 0, 0
	}
	dx, dy := target.X-x, target.Y-y
	dist := math.Hypot(dx, dy)
	if dist <= t.FollowMinDistance {
		return 0, 0
	}
	if target.Via {
		if vx, vy := target.ViaX-x, target.ViaY-y; vx != 0 || vy != 0 {
			dx, dy = vx, vy
			dist = math.Hypot(dx, dy)
		}
	}
	speed := s.Speed * t.FollowSpeed
	return dx / dist * speed, dy / dist * speed
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
