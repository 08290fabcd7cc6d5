package factory

import (
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/tmx-explorer/archetypes"
	"github.com/automoto/tmx-explorer/assets"
	"github.com/automoto/tmx-explorer/assets/animations"
	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/shared/behavior"
	"github.com/automoto/tmx-explorer/shared/collision"
	"github.com/automoto/tmx-explorer/shared/leveldata"
	"github.com/automoto/tmx-explorer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Placeholder images shared by every character without a sprite sheet.
var placeholders = map[color.RGBA]*ebiten.Image{}

// CharacterFootprint is the configured collision box of every character.
func CharacterFootprint() collision.Footprint {
	return collision.Footprint{
		Width:  cfg.Character.Width,
		Depth:  cfg.Character.Depth,
		Height: cfg.Character.Height,
	}
}

// CreateCharacter spawns the player or an NPC at sp and adds its footprint to
// space.
func CreateCharacter(ecs *ecs.ECS, w *assets.World, cache *assets.ResourceCache, space *resolv.Space, sp leveldata.SpawnPoint) (*donburi.Entry, error) {
	var steering *behavior.State
	speed := sp.Speed
	if speed <= 0 {
		speed = cfg.Character.Speed
	}
	if !sp.Player {
		kind, err := behavior.ParseKind(sp.Behavior)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", sp.Name, err)
		}
		steering = behavior.NewState(kind, speed, sp.X, sp.Y, sp.Path)
	}

	var entry *donburi.Entry
	if sp.Player {
		entry = archetypes.Player.Spawn(ecs)
	} else {
		entry = archetypes.NPC.Spawn(ecs)
		components.NPC.SetValue(entry, components.NPCData{Steering: steering, Target: sp.Target})
	}

	fp := CharacterFootprint()
	z := w.ClampHeight(sp.Z)
	if !w.CanMoveTo(sp.X, sp.Y, z, fp) {
		log.Printf("Warning: character %q spawns inside a solid tile at (%.0f, %.0f, %.2f)", sp.Name, sp.X, sp.Y, z)
	}

	components.Character.SetValue(entry, components.CharacterData{
		Name:      sp.Name,
		X:         sp.X,
		Y:         sp.Y,
		Z:         z,
		Speed:     speed,
		Footprint: fp,
		Facing:    animations.Down,
		Walk:      animations.NewWalkCycle(cfg.Character.WalkTicks),
	})

	fw, fh := FootprintPixels(fp, w.TileWidth, w.TileHeight)
	obj := resolv.NewObject(sp.X-fw/2, sp.Y-fh/2, fw, fh)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if sp.Player {
		obj.AddTags(tags.ResolvCharacter, tags.ResolvPlayer)
	} else {
		obj.AddTags(tags.ResolvCharacter, tags.ResolvNPC)
	}
	obj.Data = entry
	space.Add(obj)

	components.Sprite.SetValue(entry, loadSprite(w, cache, sp))

	return entry, nil
}

// FootprintPixels converts a footprint's planar size to pixels.
func FootprintPixels(fp collision.Footprint, tileW, tileH int) (float64, float64) {
	return fp.Width * float64(tileW), fp.Depth * float64(tileH)
}

func loadSprite(w *assets.World, cache *assets.ResourceCache, sp leveldata.SpawnPoint) components.SpriteData {
	tint := cfg.Character.NPCColor
	if sp.Player {
		tint = cfg.Character.PlayerColor
	}
	sprite := components.SpriteData{
		Placeholder: placeholder(tint),
		FrameWidth:  cfg.Character.FrameWidth,
		FrameHeight: cfg.Character.FrameHeight,
	}
	if sp.Sprite == "" {
		return sprite
	}

	sheetPath := w.ResolvePath(sp.Sprite)
	sheet, err := cache.Image(sheetPath)
	if err != nil {
		log.Printf("Warning: character %q: %v", sp.Name, err)
		return sprite
	}
	b := sheet.Bounds()
	fw, fh := b.Dx()/animations.SheetColumns, b.Dy()/animations.SheetRows

	// Cut every frame up front so drawing never allocates sub-images.
	var frames components.Frames
	for row := range animations.SheetRows {
		for col := range animations.SheetColumns {
			rect := animations.FrameRect(animations.Direction(row), col, fw, fh)
			frame, err := cache.SubImage(sheetPath, rect)
			if err != nil {
				log.Printf("Warning: character %q: %v", sp.Name, err)
				return sprite
			}
			frames[row][col] = frame
		}
	}
	sprite.Frames = &frames
	sprite.FrameWidth = fw
	sprite.FrameHeight = fh
	return sprite
}

func placeholder(c color.RGBA) *ebiten.Image {
	if img, ok := placeholders[c]; ok {
		return img
	}
	img := ebiten.NewImage(cfg.Character.FrameWidth, cfg.Character.FrameHeight)
	img.Fill(c)
	placeholders[c] = img
	return img
}
