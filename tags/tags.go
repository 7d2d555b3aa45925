package tags

import "github.com/yohamta/donburi"

var (
	Kart      = donburi.NewTag().SetName("Kart")
	LocalKart = donburi.NewTag().SetName("LocalKart")
	Wall      = donburi.NewTag().SetName("Wall")
	Zipper    = donburi.NewTag().SetName("Zipper")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvKart   = "Kart"
	ResolvZipper = "zipper"
)
