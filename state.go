package main

import (
	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SpriteState is the only state the main loop mutates.
type SpriteState struct {
	X, Y int32
	Clip int
}

func NewSpriteState(cfg *Config) SpriteState {
	x, y := centred(cfg.ScreenWidth(), cfg.ScreenHeight(), cfg.clipWidth, cfg.clipHeight)
	return SpriteState{X: x, Y: y, Clip: 0}
}

// Apply handles Move and SelectClip. The sprite is pinned to the window
// edge rather than wrapped.
func (s *SpriteState) Apply(a Action, cfg *Config) {
	switch a.Kind {
	case move:
		dx, dy := a.Dir.delta(cfg.step)
		s.X = clamp(s.X+dx, 0, cfg.ScreenWidth()-cfg.clipWidth)
		s.Y = clamp(s.Y+dy, 0, cfg.ScreenHeight()-cfg.clipHeight)
	case selectClip:
		if a.Clip >= 0 && a.Clip < cfg.clipCount {
			s.Clip = a.Clip
		}
	}
}
