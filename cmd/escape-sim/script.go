package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/escape/components"
	"github.com/automoto/escape/systems"
)

// Action is what a scripted tap does.
type Action int

const (
	ActionTap   Action = iota // Raw screen tap at X, Y
	ActionJump                // Tap in the right half
	ActionFlip                // Tap in the left half
	ActionPause               // Tap on the pause button
	ActionBack                // Back key
)

// Tap is one scripted input, applied before the update of its step.
type Tap struct {
	Step   int
	Action Action
	X, Y   float64
}

var actionNames = map[string]Action{
	"jump":  ActionJump,
	"flip":  ActionFlip,
	"pause": ActionPause,
	"back":  ActionBack,
}

// ParseScript reads a comma separated list of "step:action" entries, where
// action is jump, flip, pause, back or a raw "x/y" tap. The result is
// ordered by step; taps sharing a step keep their order.
func ParseScript(script string) ([]Tap, error) {
	var taps []Tap
	for _, entry := range strings.Split(script, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		stepStr, action, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("tap %q: want step:action", entry)
		}
		step, err := strconv.Atoi(strings.TrimSpace(stepStr))
		if err != nil || step < 0 {
			return nil, fmt.Errorf("tap %q: bad step", entry)
		}

		action = strings.TrimSpace(action)
		if a, ok := actionNames[action]; ok {
			taps = append(taps, Tap{Step: step, Action: a})
			continue
		}
		xs, ys, ok := strings.Cut(action, "/")
		if !ok {
			return nil, fmt.Errorf("tap %q: unknown action %q", entry, action)
		}
		x, errX := strconv.ParseFloat(xs, 64)
		y, errY := strconv.ParseFloat(ys, 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("tap %q: bad coordinates", entry)
		}
		taps = append(taps, Tap{Step: step, Action: ActionTap, X: x, Y: y})
	}

	sort.SliceStable(taps, func(i, j int) bool { return taps[i].Step < taps[j].Step })
	return taps, nil
}

// apply feeds a tap to the session using the current screen layout.
func apply(s *systems.Session, t Tap) {
	f := s.Snapshot()
	switch t.Action {
	case ActionTap:
		s.OnTouch(t.X, t.Y)
	case ActionJump:
		s.OnTouch(f.ScreenW*3/4, f.ScreenH/2)
	case ActionFlip:
		s.OnTouch(f.ScreenW/4, f.ScreenH/2)
	case ActionPause:
		for _, z := range f.Zones {
			if z.Kind == components.ZoneButton {
				s.OnTouch(z.X+z.W/2, z.Y+z.H/2)
				return
			}
		}
	case ActionBack:
		s.OnBack()
	}
}

// simulate runs the session for at most steps fixed updates. It stops
// early when the session is exited, or when the attempt is over and no
// taps remain. It returns the number of updates run.
func simulate(s *systems.Session, taps []Tap, steps int, dt float64) int {
	next := 0
	for step := 0; step < steps; step++ {
		for next < len(taps) && taps[next].Step <= step {
			apply(s, taps[next])
			next++
		}
		s.Update(dt)

		f := s.Snapshot()
		if f.Exited || (f.Player.Over() && next == len(taps)) {
			return step + 1
		}
	}
	return steps
}
