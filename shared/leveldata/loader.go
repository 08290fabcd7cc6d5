package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// SolidPropertyName is the tileset tile property marking a tile as blocking.
const SolidPropertyName = "solid"

// LoadMap parses a TMX file and converts it into MapData. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadMap(fsys fs.FS, tmxPath string) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	data, err := convertMap(levelMap)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return data, nil
}

func convertMap(levelMap *tiled.Map) (*MapData, error) {
	data := &MapData{
		Width:      levelMap.Width,
		Height:     levelMap.Height,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	var err error
	data.Layers, err = convertLayers(levelMap.Layers, levelMap.ObjectGroups, levelMap.Groups, levelMap.Width, levelMap.Height)
	if err != nil {
		return nil, err
	}

	sets := make([]TilesetInfo, 0, len(levelMap.Tilesets))
	data.Solid = make(SolidSet)
	for _, ts := range levelMap.Tilesets {
		info, err := convertTileset(ts, data.Solid)
		if err != nil {
			return nil, err
		}
		sets = append(sets, info)
	}
	data.Catalog = NewTilesetCatalog(sets)

	return data, nil
}

// convertLayers builds one level of the layer tree. go-tiled keeps tile
// layers, object groups and groups in separate lists, so they are emitted in
// that order.
func convertLayers(layers []*tiled.Layer, objectGroups []*tiled.ObjectGroup, groups []*tiled.Group, width, height int) ([]LayerNode, error) {
	nodes := make([]LayerNode, 0, len(layers)+len(objectGroups)+len(groups))

	for _, layer := range layers {
		gids := make([]uint32, len(layer.Tiles))
		for i, tile := range layer.Tiles {
			gids[i] = tileGID(tile)
		}
		grid, err := NewTileGrid(layer.Name, width, height, gids)
		if err != nil {
			return nil, err
		}
		grid.Properties, err = convertProperties(layer.Properties, layer.Name)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, grid)
	}

	for _, og := range objectGroups {
		layer, err := convertObjectGroup(og)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, layer)
	}

	for _, g := range groups {
		children, err := convertLayers(g.Layers, g.ObjectGroups, g.Groups, width, height)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		props, err := convertProperties(g.Properties, g.Name)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &LayerGroup{Name: g.Name, Properties: props, Children: children})
	}

	return nodes, nil
}

func convertObjectGroup(og *tiled.ObjectGroup) (*ObjectLayer, error) {
	props, err := convertProperties(og.Properties, og.Name)
	if err != nil {
		return nil, err
	}
	layer := &ObjectLayer{Name: og.Name, Properties: props}

	for _, o := range og.Objects {
		owner := fmt.Sprintf("%s object %d", og.Name, o.ID)
		objProps, err := convertProperties(o.Properties, owner)
		if err != nil {
			return nil, err
		}
		class := o.Class
		if class == "" {
			class = o.Type //nolint:staticcheck // older TMX files use type=
		}
		obj := MapObject{
			ID:         o.ID,
			Name:       o.Name,
			Class:      class,
			X:          o.X,
			Y:          o.Y,
			Width:      o.Width,
			Height:     o.Height,
			Properties: objProps,
		}
		if len(o.PolyLines) > 0 && o.PolyLines[0].Points != nil {
			for _, pt := range *o.PolyLines[0].Points {
				obj.Path = append(obj.Path, Point{X: o.X + pt.X, Y: o.Y + pt.Y})
			}
		}
		layer.Objects = append(layer.Objects, obj)
	}
	return layer, nil
}

// tileGID rebuilds the global ID go-tiled split into tileset and local ID.
// Flip flags are not part of the GID.
func tileGID(tile *tiled.LayerTile) uint32 {
	if tile == nil || tile.IsNil() || tile.Tileset == nil {
		return 0
	}
	return tile.Tileset.FirstGID + tile.ID
}

func convertTileset(ts *tiled.Tileset, solid SolidSet) (TilesetInfo, error) {
	info := TilesetInfo{
		Name:       ts.Name,
		FirstGID:   ts.FirstGID,
		TileCount:  ts.TileCount,
		Columns:    ts.Columns,
		TileWidth:  ts.TileWidth,
		TileHeight: ts.TileHeight,
		Margin:     ts.Margin,
		Spacing:    ts.Spacing,
		Tiles:      make(map[uint32]TileImage),
	}
	if ts.Image != nil && ts.Image.Source != "" {
		info.Image = ts.GetFileFullPath(ts.Image.Source)
	}

	for _, tile := range ts.Tiles {
		if tile.Image != nil && tile.Image.Source != "" {
			info.Tiles[tile.ID] = TileImage{
				Source: ts.GetFileFullPath(tile.Image.Source),
				Width:  tile.Image.Width,
				Height: tile.Image.Height,
			}
		}

		owner := fmt.Sprintf("tileset %q tile %d", ts.Name, tile.ID)
		props, err := convertProperties(tile.Properties, owner)
		if err != nil {
			return TilesetInfo{}, err
		}
		if props.Bool(SolidPropertyName) {
			solid[ts.FirstGID+tile.ID] = struct{}{}
		}
	}

	return info, nil
}

func convertProperties(src tiled.Properties, owner string) (Properties, error) {
	var props Properties
	for _, p := range src {
		if p == nil {
			continue
		}
		v, err := ParseProperty(p.Name, p.Type, p.Value)
		if err != nil {
			return Properties{}, withOwner(err, owner)
		}
		props.Set(p.Name, v)
	}
	return props, nil
}

// LoadAllMaps discovers all .tmx files in dir within fsys, loads each one, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAllMaps(fsys fs.FS, dir string) (map[string]*MapData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	maps := make(map[string]*MapData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadMap(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		maps[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return maps, names, nil
}
