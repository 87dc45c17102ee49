package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/bitwiserain/springshot/shared/physics"
)

// Input actions a script can schedule. A leading "!" releases a direction.
const (
	actLeft         = "left"
	actRight        = "right"
	actReleaseLeft  = "!left"
	actReleaseRight = "!right"
	actJump         = "jump"
	actAim          = "aim"
	actFire         = "fire"
)

// event is one scripted input, applied just before tick Tick runs.
type event struct {
	Tick   uint64
	Action string
	Target gamemath.Vec // aim and fire only
	HasPos bool
}

// parseScript reads a comma separated timeline such as
// "0:right,30:jump,45:!right,60:fire=400x100". Events keep their written
// order within a tick.
func parseScript(s string) ([]event, error) {
	var events []event
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		ev, err := parseEvent(field)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })
	return events, nil
}

func parseEvent(field string) (event, error) {
	tickStr, rest, ok := strings.Cut(field, ":")
	if !ok {
		return event{}, fmt.Errorf("event %q: missing ':'", field)
	}
	tick, err := strconv.ParseUint(tickStr, 10, 64)
	if err != nil {
		return event{}, fmt.Errorf("event %q: bad tick: %w", field, err)
	}

	action, arg, hasArg := strings.Cut(rest, "=")
	ev := event{Tick: tick, Action: action}
	switch action {
	case actLeft, actRight, actReleaseLeft, actReleaseRight, actJump:
		if hasArg {
			return event{}, fmt.Errorf("event %q: %s takes no target", field, action)
		}
	case actAim, actFire:
		if !hasArg {
			if action == actAim {
				return event{}, fmt.Errorf("event %q: aim needs a target", field)
			}
			break
		}
		target, err := parseTarget(arg)
		if err != nil {
			return event{}, fmt.Errorf("event %q: %w", field, err)
		}
		ev.Target, ev.HasPos = target, true
	default:
		return event{}, fmt.Errorf("event %q: unknown action %q", field, action)
	}
	return ev, nil
}

func parseTarget(s string) (gamemath.Vec, error) {
	xs, ys, ok := strings.Cut(s, "x")
	if !ok {
		return gamemath.Vec{}, fmt.Errorf("target %q: want XxY", s)
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return gamemath.Vec{}, fmt.Errorf("target %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return gamemath.Vec{}, fmt.Errorf("target %q: %w", s, err)
	}
	return gamemath.V(x, y), nil
}

// apply sends ev to the world.
func (ev event) apply(w *physics.World) {
	switch ev.Action {
	case actLeft:
		w.PressLeft()
	case actRight:
		w.PressRight()
	case actReleaseLeft:
		w.ReleaseLeft()
	case actReleaseRight:
		w.ReleaseRight()
	case actJump:
		w.Jump()
	case actAim:
		w.SetAim(ev.Target)
	case actFire:
		if ev.HasPos {
			w.FireAt(ev.Target)
			return
		}
		w.Fire()
	}
}
