package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

// draw copies tex to r with its top-left corner at x, y. With a clip only
// that part of tex is drawn, at the clip's size; otherwise all of it.
func draw(r *sdl.Renderer, tex *sdl.Texture, x, y int32, clip *sdl.Rect) error {
	dst := sdl.Rect{X: x, Y: y}
	if clip != nil {
		dst.W, dst.H = clip.W, clip.H
	} else {
		_, _, w, h, err := tex.Query()
		if err != nil {
			return err
		}
		dst.W, dst.H = w, h
	}
	return r.Copy(tex, clip, &dst)
}

func centred(screenW, screenH, w, h int32) (int32, int32) {
	return screenW/2 - w/2, screenH/2 - h/2
}
