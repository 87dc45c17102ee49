package systems

import (
	"github.com/bitwiserain/springshot/components"
	cfg "github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/shared/physics"
	"github.com/bitwiserain/springshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// squashAttack is how long the sprite takes to reach its squashed shape.
const squashAttack float32 = 0.04

// UpdateSquashStretch watches the player's vertical state and plays a
// stretch on take-off and a squash on landing.
func UpdateSquashStretch(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	sim := GetSimulation(e)
	if sim == nil || sim.World == nil {
		return
	}
	ss := components.SquashStretch.Get(playerEntry)
	vertical := sim.World.Player.Vertical

	if vertical != ss.LastVertical {
		if vertical == physics.Airborne && sim.World.Player.Velocity.Y > 0 {
			TriggerSquashStretch(ss, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		} else if vertical == physics.Grounded {
			TriggerSquashStretch(ss, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
		}
		ss.LastVertical = vertical
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	ss.ScaleX = stepScale(&ss.TweenX, ss.ScaleX, dt)
	ss.ScaleY = stepScale(&ss.TweenY, ss.ScaleY, dt)
}

// TriggerSquashStretch restarts both axis tweens toward the given scale and
// back to 1.
func TriggerSquashStretch(ss *components.SquashStretchData, scaleX, scaleY float64) {
	ss.TweenX = newScaleSequence(ss.ScaleX, scaleX)
	ss.TweenY = newScaleSequence(ss.ScaleY, scaleY)
}

func newScaleSequence(from, peak float64) *gween.Sequence {
	if from == 0 {
		from = 1
	}
	seq := gween.NewSequence()
	seq.Add(
		gween.New(float32(from), float32(peak), squashAttack, ease.OutQuad),
		gween.New(float32(peak), 1, cfg.SquashStretch.Duration, ease.OutBack),
	)
	return seq
}

// stepScale advances a scale tween and drops it once it has finished.
func stepScale(seq **gween.Sequence, current float64, dt float32) float64 {
	if *seq == nil {
		if current == 0 {
			return 1
		}
		return current
	}
	v, _, done := (*seq).Update(dt)
	if done {
		*seq = nil
		return 1
	}
	return float64(v)
}
