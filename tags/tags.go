package tags

import (
	"github.com/yohamta/donburi"

	"github.com/bitwiserain/springshot/shared/physics"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags used by the collision index
const (
	ResolvSolid = physics.TagSolid
)
