package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/bitwiserain/springshot/shared/physics"
)

// SquashStretchData tracks sprite scale deformation for jump/land feel.
// Each axis eases back to 1 through its own tween sequence.
type SquashStretchData struct {
	ScaleX, ScaleY float64
	TweenX, TweenY *gween.Sequence

	// Vertical state seen last frame, used to detect jumps and landings
	LastVertical physics.VerticalState
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
