package components

import "github.com/yohamta/donburi"

// ViewerData is the explorer's view state: which levels are drawn and what
// overlays are on.
type ViewerData struct {
	CurrentZ    int     // highest drawn height index
	LevelOffset float64 // screen pixels per level
	ShowGrid    bool
	ShowInfo    bool
	Hidden      []bool // per layer index
	MapPath     string
	Dirty       bool // settings changed since the last save
	Quit        bool
}

// LayerVisible reports whether layer n is drawn.
func (v *ViewerData) LayerVisible(n int) bool {
	return n < 0 || n >= len(v.Hidden) || !v.Hidden[n]
}

var Viewer = donburi.NewComponentType[ViewerData]()
