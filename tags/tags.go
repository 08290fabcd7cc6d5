package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	NPC    = donburi.NewTag().SetName("NPC")
)

// Resolv tags for character overlap
const (
	ResolvCharacter = "character"
	ResolvPlayer    = "Player"
	ResolvNPC       = "NPC"
)
