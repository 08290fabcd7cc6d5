package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/tmx-explorer/assets"
	"github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/scenes"
	"github.com/automoto/tmx-explorer/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	mapFlag := flag.String("map", "", "TMX map to open (defaults to the last one viewed)")
	rootFlag := flag.String("root", "", "directory the map's tilesets and sprites live under (defaults to the map's directory)")
	flag.BoolVar(&config.Debug.ShowGrid, "grid", config.Debug.ShowGrid, "start with the grid overlay on")
	flag.BoolVar(&config.Debug.ShowInfo, "info", config.Debug.ShowInfo, "start with the info panel on")
	flag.Int64Var(&config.Debug.Seed, "seed", config.Debug.Seed, "NPC steering seed")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [map.tmx]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, _ := systems.LoadSettings()

	mapPath := *mapFlag
	if mapPath == "" {
		mapPath = flag.Arg(0)
	}
	if mapPath == "" && saved != nil {
		mapPath = saved.MapPath
	}
	if mapPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	mapPath, err := filepath.Abs(mapPath)
	if err != nil {
		log.Fatalf("Failed to resolve %s: %v", mapPath, err)
	}

	// Tilesets and sprites are resolved relative to the map and must stay
	// inside root; fs.FS paths cannot climb out with "..".
	root := filepath.Dir(mapPath)
	if *rootFlag != "" {
		if root, err = filepath.Abs(*rootFlag); err != nil {
			log.Fatalf("Failed to resolve %s: %v", *rootFlag, err)
		}
	}
	rel, err := filepath.Rel(root, mapPath)
	if err != nil || !filepath.IsLocal(rel) {
		log.Fatalf("Map %s is not inside root %s", mapPath, root)
	}
	fsys := os.DirFS(root)
	cache := assets.NewResourceCache(fsys)
	w, err := assets.LoadWorld(fsys, filepath.ToSlash(rel), cache)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", config.C.Title, filepath.Base(mapPath)))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	game := &Game{scene: scenes.NewExplorerScene(w, cache, mapPath, saved)}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
