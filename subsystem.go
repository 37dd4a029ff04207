package main

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func initSubsystems(cfg *Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return initError("SDL_Init", err)
	}
	if err := mix.OpenAudio(cfg.audioFrequency, cfg.audioFormat, cfg.audioChannels, cfg.audioChunk); err != nil {
		return initError("Mix_OpenAudio", err)
	}
	// IMG_Init reports every format loaded so far, and the binding drops
	// those flags, so a PNG failure only shows up as the SDL error message.
	sdl.ClearError()
	if err := img.Init(img.INIT_PNG); err != nil {
		return initError("IMG_Init", err)
	}
	if err := sdl.GetError(); err != nil {
		return initError("IMG_Init", err)
	}
	if err := ttf.Init(); err != nil {
		return initError("TTF_Init", err)
	}
	logger.Debug("subsystems initialized")
	return nil
}

// quitAll is safe to call whether or not each subsystem came up.
func quitAll() {
	mix.CloseAudio()
	mix.Quit()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

func createWindow(cfg *Config) (*sdl.Window, *sdl.Renderer, error) {
	window, err := sdl.CreateWindow(cfg.title, cfg.windowX, cfg.windowY,
		cfg.ScreenWidth(), cfg.ScreenHeight(), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, initError("SDL_CreateWindow", err)
	}
	r, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, nil, initError("SDL_CreateRenderer", err)
	}
	return window, r, nil
}
