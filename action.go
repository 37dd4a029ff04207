package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

type direction int

const (
	up direction = iota
	down
	left
	right
)

func (d direction) String() string {
	switch d {
	case up:
		return "Up"
	case down:
		return "Down"
	case left:
		return "Left"
	case right:
		return "Right"
	}
	return "UNKNOWN"
}

func (d direction) delta(step int32) (dx, dy int32) {
	switch d {
	case up:
		return 0, -step
	case down:
		return 0, step
	case left:
		return -step, 0
	case right:
		return step, 0
	}
	return 0, 0
}

type actionKind int

const (
	noOp actionKind = iota
	move
	selectClip
	toggleMusicAction
	quitAction
)

type Action struct {
	Kind actionKind
	Dir  direction // Move only
	Clip int       // SelectClip only
}

func (a Action) String() string {
	switch a.Kind {
	case move:
		return fmt.Sprintf("Move(%v)", a.Dir)
	case selectClip:
		return fmt.Sprintf("SelectClip(%d)", a.Clip)
	case toggleMusicAction:
		return "ToggleMusic"
	case quitAction:
		return "Quit"
	}
	return "NoOp"
}

var keyActions = map[sdl.Keycode]Action{
	sdl.K_1:    {Kind: selectClip, Clip: 0},
	sdl.K_KP_1: {Kind: selectClip, Clip: 0},
	sdl.K_2:    {Kind: selectClip, Clip: 1},
	sdl.K_KP_2: {Kind: selectClip, Clip: 1},
	sdl.K_3:    {Kind: selectClip, Clip: 2},
	sdl.K_KP_3: {Kind: selectClip, Clip: 2},
	sdl.K_4:    {Kind: selectClip, Clip: 3},
	sdl.K_KP_4: {Kind: selectClip, Clip: 3},

	sdl.K_UP:    {Kind: move, Dir: up},
	sdl.K_w:     {Kind: move, Dir: up},
	sdl.K_DOWN:  {Kind: move, Dir: down},
	sdl.K_s:     {Kind: move, Dir: down},
	sdl.K_LEFT:  {Kind: move, Dir: left},
	sdl.K_a:     {Kind: move, Dir: left},
	sdl.K_RIGHT: {Kind: move, Dir: right},
	sdl.K_d:     {Kind: move, Dir: right},

	sdl.K_m: {Kind: toggleMusicAction},

	sdl.K_q:      {Kind: quitAction},
	sdl.K_ESCAPE: {Kind: quitAction},
}

// actionFor returns NoOp for unmapped keys.
func actionFor(k sdl.Keycode) Action {
	return keyActions[k]
}
