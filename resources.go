package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// resourcePath maps the executable's directory to its asset directory.
// An install laid out as <root>/bin/<exe> keeps assets in <root>/res; any
// other layout keeps them in <base>/res.
func resourcePath(base, sub string) string {
	base = filepath.Clean(base)
	parts := strings.Split(base, string(filepath.Separator))
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "bin" {
			parts = parts[:i]
			break
		}
	}
	root := strings.Join(parts, string(filepath.Separator))
	if root == "" && filepath.IsAbs(base) {
		root = string(filepath.Separator)
	}
	return filepath.Join(root, "res", sub)
}

func loadTexture(r *sdl.Renderer, path string) (*sdl.Texture, error) {
	t, err := img.LoadTexture(r, path)
	if err != nil {
		return nil, loadError("LoadTexture", err)
	}
	return t, nil
}

func loadMusic(path string) (*mix.Music, error) {
	m, err := mix.LoadMUS(path)
	if err != nil {
		return nil, loadError("Mix_LoadMUS", err)
	}
	return m, nil
}

func openFont(path string, size int) (*ttf.Font, error) {
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		if sys, ferr := findfont.Find(filepath.Base(path)); ferr == nil {
			logger.Info("hint: a system copy of this font exists; only the resource dir is searched, copy it there to use it",
				"system", sys, "wanted", path)
		}
		return nil, loadError("TTF_OpenFont", err)
	}
	return f, nil
}

// renderText draws message into a texture. The intermediate surface is
// always freed.
func renderText(r *sdl.Renderer, f *ttf.Font, message string, c sdl.Color) (*sdl.Texture, error) {
	surface, err := f.RenderUTF8Blended(message, c)
	if err != nil {
		return nil, loadError("TTF_RenderText", err)
	}
	defer surface.Free()
	texture, err := r.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, loadError("SDL_CreateTexture", err)
	}
	return texture, nil
}

// checkSheet fails unless every clip lies inside a w x h spritesheet.
func checkSheet(w, h int32, clips []sdl.Rect) error {
	for i, c := range clips {
		if c.X < 0 || c.Y < 0 || c.X+c.W > w || c.Y+c.H > h {
			return loadError("LoadTexture",
				fmt.Errorf("spritesheet is %dx%d, clip %d needs %dx%d", w, h, i, c.X+c.W, c.Y+c.H))
		}
	}
	return nil
}
