package components

import (
	"github.com/yohamta/donburi"

	"github.com/bitwiserain/springshot/shared/gamemath"
)

// AimData tracks the fire button between press and release.
type AimData struct {
	Aiming  bool
	Target  gamemath.Vec   // world coordinates
	Preview []gamemath.Vec // predicted projectile path, refreshed while aiming
}

var Aim = donburi.NewComponentType[AimData]()
