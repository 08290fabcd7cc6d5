// Package assets loads map worlds and the images they reference.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ResourceCache owns every decoded image. Whole files are keyed by path and
// sub-images by "path#WxH@x,y", so a tileset image is decoded once no matter
// how many tiles are cut from it. It is not safe for concurrent use; the game
// loop is its only caller.
type ResourceCache struct {
	fsys      fs.FS
	images    map[string]*ebiten.Image
	subImages map[string]*ebiten.Image
	failed    map[string]error
}

func NewResourceCache(fsys fs.FS) *ResourceCache {
	return &ResourceCache{
		fsys:      fsys,
		images:    make(map[string]*ebiten.Image),
		subImages: make(map[string]*ebiten.Image),
		failed:    make(map[string]error),
	}
}

// Image returns the decoded image at path. A failed load is remembered and
// returned again without touching the file system.
func (c *ResourceCache) Image(path string) (*ebiten.Image, error) {
	path = filepath.ToSlash(path)
	if img, ok := c.images[path]; ok {
		return img, nil
	}
	if err, ok := c.failed[path]; ok {
		return nil, err
	}

	img, err := c.decode(path)
	if err != nil {
		c.failed[path] = err
		return nil, err
	}
	c.images[path] = img
	return img, nil
}

func (c *ResourceCache) decode(path string) (*ebiten.Image, error) {
	f, err := c.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// SubImage returns the rect of the image at path, cached per rect.
func (c *ResourceCache) SubImage(path string, rect image.Rectangle) (*ebiten.Image, error) {
	path = filepath.ToSlash(path)
	key := SubImageKey(path, rect)
	if img, ok := c.subImages[key]; ok {
		return img, nil
	}

	sheet, err := c.Image(path)
	if err != nil {
		return nil, err
	}
	if !rect.In(sheet.Bounds()) {
		return nil, fmt.Errorf("image %s: rect %v outside bounds %v", path, rect, sheet.Bounds())
	}
	img := sheet.SubImage(rect).(*ebiten.Image)
	c.subImages[key] = img
	return img, nil
}

// SubImageKey is the cache key of a sub-image.
func SubImageKey(path string, rect image.Rectangle) string {
	return fmt.Sprintf("%s#%dx%d@%d,%d", path, rect.Dx(), rect.Dy(), rect.Min.X, rect.Min.Y)
}

// Len returns the number of cached images and sub-images.
func (c *ResourceCache) Len() int {
	return len(c.images) + len(c.subImages)
}
