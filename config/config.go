package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// ViewerConfig controls how stacked levels are laid out and navigated
type ViewerConfig struct {
	LevelOffset      float64 // pixels each height level is lifted on screen
	LevelOffsetStep  float64 // Shift +/- adjustment
	CullMargin       int     // extra tiles drawn around the view
	ZoomStep         float64 // wheel zoom factor
	KeyZoomStep      float64 // +/- zoom factor
	MinZoom          float64
	MaxZoom          float64
	FitScale         float64 // fraction of the screen used when fitting all levels
	ZoomTweenSeconds float32
	PanSpeed         float64 // pixels per second with the pan keys
	FollowSmoothing  float64
	SaveDelayFrames  int // frames a settings change waits before it is saved
}

// CharacterConfig contains character movement and collision values
type CharacterConfig struct {
	Width         float64 // collision footprint in tiles
	Depth         float64
	Height        float64 // in levels
	Speed         float64 // pixels per second
	VerticalScale float64 // z speed as a fraction of Speed
	FrameWidth    int     // placeholder sprite size
	FrameHeight   int
	WalkTicks     float32 // ticks per walk frame
	SpaceCell     int     // resolv cell size in pixels
	PlayerColor   color.RGBA
	NPCColor      color.RGBA
}

// PathfindingConfig controls how follow NPCs route around walls
type PathfindingConfig struct {
	RepathFrames int // frames between route refreshes
}

// HUDConfig contains info panel and grid overlay styling
type HUDConfig struct {
	Margin        int
	LineHeight    int
	PanelColor    color.RGBA
	GridColor     color.RGBA
	SolidColor    color.RGBA
	MaxLayerLines int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowGrid bool
	ShowInfo bool
	Seed     int64 // NPC steering seed
}

// Global configuration instances
var C *Config
var Viewer ViewerConfig
var Character CharacterConfig
var Pathfinding PathfindingConfig
var HUD HUDConfig
var Debug DebugConfig

// Default is the only ECS render layer.
const Default ecs.LayerID = 0

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Grey         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "TMX Explorer",
		TPS:    60,
	}

	Viewer = ViewerConfig{
		LevelOffset:      128,
		LevelOffsetStep:  16,
		CullMargin:       3,
		ZoomStep:         1.1,
		KeyZoomStep:      1.2,
		MinZoom:          0.1,
		MaxZoom:          5.0,
		FitScale:         0.85,
		ZoomTweenSeconds: 0.35,
		PanSpeed:         400,
		FollowSmoothing:  0.1,
		SaveDelayFrames:  60,
	}

	Character = CharacterConfig{
		Width:         0.5,
		Depth:         0.5,
		Height:        0.85,
		Speed:         100,
		VerticalScale: 0.01,
		FrameWidth:    24,
		FrameHeight:   32,
		WalkTicks:     7.5, // 8 frames per second at 60 TPS
		SpaceCell:     16,
		PlayerColor:   LightBlue,
		NPCColor:      Orange,
	}

	Pathfinding = PathfindingConfig{
		RepathFrames: 30,
	}

	HUD = HUDConfig{
		Margin:        8,
		LineHeight:    16,
		PanelColor:    BlackOverlay,
		GridColor:     color.RGBA{R: 255, G: 255, B: 255, A: 40},
		SolidColor:    color.RGBA{R: 255, G: 0, B: 0, A: 70},
		MaxLayerLines: 24,
	}

	Debug = DebugConfig{
		ShowInfo: true,
		Seed:     42,
	}
}
