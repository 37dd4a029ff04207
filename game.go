package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

type loopState int

const (
	running loopState = iota
	quit
)

func (s loopState) String() string {
	switch s {
	case running:
		return "Running"
	case quit:
		return "Quit"
	default:
		return "Error"
	}
}

type Game struct {
	cfg   *Config
	r     *sdl.Renderer
	sheet *sdl.Texture
	clips []sdl.Rect
	text  *sdl.Texture
	textX int32
	textY int32
	music musicPlayer
	state SpriteState
	loop  loopState
}

func NewGame(cfg *Config, r *sdl.Renderer, sheet, text *sdl.Texture, music musicPlayer) (*Game, error) {
	g := Game{
		cfg:   cfg,
		r:     r,
		sheet: sheet,
		clips: cfg.Clips(),
		text:  text,
		music: music,
		state: NewSpriteState(cfg),
		loop:  running,
	}
	_, _, tw, th, err := text.Query()
	if err != nil {
		return nil, loadError("SDL_QueryTexture", err)
	}
	g.textX, g.textY = centred(cfg.ScreenWidth(), cfg.ScreenHeight(), tw, th)
	return &g, nil
}

// Run returns once a quit is requested; nothing else ends the loop.
func (g *Game) Run() {
	for g.loop == running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			g.HandleEvent(event)
		}
		g.Render()
	}
}

func (g *Game) HandleEvent(e sdl.Event) {
	switch ev := e.(type) {
	case *sdl.QuitEvent:
		g.loop = quit
	case *sdl.KeyboardEvent:
		if ev.GetType() == sdl.KEYDOWN {
			g.dispatch(actionFor(ev.Keysym.Sym))
		}
	}
}

func (g *Game) dispatch(a Action) {
	switch a.Kind {
	case quitAction:
		logger.Debug("quit requested")
		g.loop = quit
	case toggleMusicAction:
		if err := toggleMusic(g.music); err != nil {
			logger.Warn("could not play music", "err", err)
		}
	default:
		g.state.Apply(a, g.cfg)
	}
}

// Render draws one frame. A failed clear or copy is logged and the frame
// is still presented.
func (g *Game) Render() {
	if err := g.r.Clear(); err != nil {
		logger.Warn("clear failed", "err", err)
	}
	if err := draw(g.r, g.sheet, g.state.X, g.state.Y, &g.clips[g.state.Clip]); err != nil {
		logger.Warn("sprite copy failed", "clip", g.state.Clip, "err", err)
	}
	if err := draw(g.r, g.text, g.textX, g.textY, nil); err != nil {
		logger.Warn("text copy failed", "err", err)
	}
	g.r.Present()
}
