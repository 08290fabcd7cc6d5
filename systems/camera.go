package systems

import (
	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/shared/gamemath"
	"github.com/automoto/tmx-explorer/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera handles zoom, panning, following the player and the eased
// refit after a height change.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)
	viewer := getViewer(e)
	dt := 1.0 / float64(cfg.C.TPS)

	if camera.ZoomTween != nil {
		progress, done := camera.ZoomTween.Update(float32(dt))
		t := float64(progress)
		camera.Zoom = camera.FromZoom + (camera.ToZoom-camera.FromZoom)*t
		camera.Position.X = camera.FromPos.X + (camera.ToPos.X-camera.FromPos.X)*t
		camera.Position.Y = camera.FromPos.Y + (camera.ToPos.Y-camera.FromPos.Y)*t
		if done {
			camera.ZoomTween = nil
		}
	}

	updateZoom(camera, input)
	updatePan(camera, input, dt)

	if GetAction(input, cfg.ActionResetCamera).JustPressed {
		FitCamera(e, false)
	}
	// Walking the player resumes following.
	if dx, dy, dz := moveAxes(input); dx != 0 || dy != 0 || dz != 0 {
		camera.Follow = true
	}

	if camera.Follow && camera.ZoomTween == nil && !camera.Dragging {
		if playerEntry, ok := tags.Player.First(e.World); ok && viewer != nil {
			ch := components.Character.Get(playerEntry)
			targetX := ch.X
			targetY := ch.Y - ch.Z*viewer.LevelOffset
			camera.Position.X += (targetX - camera.Position.X) * cfg.Viewer.FollowSmoothing
			camera.Position.Y += (targetY - camera.Position.Y) * cfg.Viewer.FollowSmoothing
		}
	}
}

func updateZoom(camera *components.CameraData, input *components.InputData) {
	factor := 1.0
	switch {
	case input.Wheel > 0:
		factor = cfg.Viewer.ZoomStep
	case input.Wheel < 0:
		factor = 1 / cfg.Viewer.ZoomStep
	}
	// Shift with +/- changes the level offset instead; see UpdateViewer.
	if !input.Shift {
		if GetAction(input, cfg.ActionZoomIn).JustPressed {
			factor *= cfg.Viewer.KeyZoomStep
		}
		if GetAction(input, cfg.ActionZoomOut).JustPressed {
			factor /= cfg.Viewer.KeyZoomStep
		}
	}
	if factor != 1 {
		camera.ZoomTween = nil
		camera.Zoom = gamemath.ClampFloat(camera.Zoom*factor, cfg.Viewer.MinZoom, cfg.Viewer.MaxZoom)
	}
}

func updatePan(camera *components.CameraData, input *components.InputData, dt float64) {
	if input.MouseJustDown {
		camera.Dragging = true
		camera.DragStart = math.Vec2{X: float64(input.CursorX), Y: float64(input.CursorY)}
		camera.DragOrigin = camera.Position
	}
	if camera.Dragging {
		if !input.MouseDown {
			camera.Dragging = false
		} else {
			camera.ZoomTween = nil
			camera.Follow = false
			camera.Position.X = camera.DragOrigin.X - (float64(input.CursorX)-camera.DragStart.X)/camera.Zoom
			camera.Position.Y = camera.DragOrigin.Y - (float64(input.CursorY)-camera.DragStart.Y)/camera.Zoom
		}
	}

	step := cfg.Viewer.PanSpeed * dt / camera.Zoom
	var dx, dy float64
	if input.Current[cfg.ActionPanLeft] {
		dx -= step
	}
	if input.Current[cfg.ActionPanRight] {
		dx += step
	}
	if input.Current[cfg.ActionPanUp] {
		dy -= step
	}
	if input.Current[cfg.ActionPanDown] {
		dy += step
	}
	if dx != 0 || dy != 0 {
		camera.Follow = false
		camera.Position.X += dx
		camera.Position.Y += dy
	}
}

// FitCamera frames every level up to the viewer's current height and stops
// following the player. With animate set the camera tweens there; otherwise
// it jumps.
func FitCamera(e *ecs.ECS, animate bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	viewer := getViewer(e)
	if viewer == nil {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w := components.World.Get(worldEntry)

	mapW, mapH := w.PixelSize()
	cx, cy, zoom := gamemath.FitLevels(float64(mapW), float64(mapH), viewer.CurrentZ, viewer.LevelOffset,
		float64(cfg.C.Width), float64(cfg.C.Height), cfg.Viewer.FitScale)
	zoom = gamemath.ClampFloat(zoom, cfg.Viewer.MinZoom, cfg.Viewer.MaxZoom)

	camera.Follow = false
	if !animate {
		camera.ZoomTween = nil
		camera.Position = math.Vec2{X: cx, Y: cy}
		camera.Zoom = zoom
		return
	}
	startTween(camera, math.Vec2{X: cx, Y: cy}, zoom)
}

func startTween(camera *components.CameraData, pos math.Vec2, zoom float64) {
	camera.FromPos = camera.Position
	camera.FromZoom = camera.Zoom
	camera.ToPos = pos
	camera.ToZoom = zoom
	camera.ZoomTween = gween.New(0, 1, cfg.Viewer.ZoomTweenSeconds, ease.OutCubic)
}

// cameraView returns the camera as a gamemath.View for a screen size.
func cameraView(camera *components.CameraData, screenW, screenH int) gamemath.View {
	return gamemath.View{
		CenterX: camera.Position.X,
		CenterY: camera.Position.Y,
		Zoom:    camera.Zoom,
		ScreenW: float64(screenW),
		ScreenH: float64(screenH),
	}
}
