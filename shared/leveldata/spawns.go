package leveldata

import (
	"sort"
	"strings"
)

// Object classes that seed characters.
const (
	ClassPlayer = "player"
	ClassNPC    = "npc"
)

// SpawnPoint places one character. X and Y are the feet position in pixels,
// Z is in height levels.
type SpawnPoint struct {
	Name     string
	Player   bool
	X, Y, Z  float64
	Behavior string  // "idle", "wander", "patrol" or "follow"; empty for the player
	Speed    float64 // 0 means the configured default
	Sprite   string
	Target   string // follow target name; empty follows the player
	Path     []Point
}

// SpawnPoints collects every player and npc object in the layer tree. The
// player comes first, the rest are sorted left to right.
func SpawnPoints(nodes []LayerNode) ([]SpawnPoint, error) {
	var spawns []SpawnPoint
	if err := collectSpawns(&spawns, nodes); err != nil {
		return nil, err
	}
	sort.SliceStable(spawns, func(i, j int) bool {
		if spawns[i].Player != spawns[j].Player {
			return spawns[i].Player
		}
		return spawns[i].X < spawns[j].X
	})
	return spawns, nil
}

func collectSpawns(spawns *[]SpawnPoint, nodes []LayerNode) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *ObjectLayer:
			for _, o := range n.Objects {
				sp, ok, err := spawnFromObject(o)
				if err != nil {
					return withOwner(err, n.Name+"/"+o.Name)
				}
				if ok {
					*spawns = append(*spawns, sp)
				}
			}
		case *LayerGroup:
			if err := collectSpawns(spawns, n.Children); err != nil {
				return err
			}
		}
	}
	return nil
}

func spawnFromObject(o MapObject) (SpawnPoint, bool, error) {
	class := strings.ToLower(o.Class)
	if class != ClassPlayer && class != ClassNPC {
		return SpawnPoint{}, false, nil
	}

	sp := SpawnPoint{
		Name:   o.Name,
		Player: class == ClassPlayer,
		X:      o.X,
		Y:      o.Y,
		Sprite: o.Properties.String("sprite"),
		Target: o.Properties.String("target"),
		Path:   o.Path,
	}
	if !sp.Player {
		sp.Behavior = strings.ToLower(o.Properties.String("behavior"))
		if sp.Behavior == "" {
			sp.Behavior = "idle"
		}
	}

	var err error
	if sp.Z, err = floatProperty(&o.Properties, "z"); err != nil {
		return SpawnPoint{}, false, err
	}
	if sp.Speed, err = floatProperty(&o.Properties, "speed"); err != nil {
		return SpawnPoint{}, false, err
	}
	return sp, true, nil
}

func floatProperty(props *Properties, name string) (float64, error) {
	v, ok := props.Get(name)
	if !ok {
		return 0, nil
	}
	f, err := AsFloat(v)
	if err != nil {
		return 0, &PropertyParseError{Property: name, Type: TypeFloat, Value: rawString(v), Err: err}
	}
	return f, nil
}
