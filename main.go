package main

import (
	"io"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/mix"
)

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(DefaultConfig(), os.Stdout))
}

// run returns the process exit status and writes failure diagnostics to
// out. Anything acquired before a failure is released before it returns.
func run(cfg *Config, out io.Writer) int {
	defer quitAll()
	if err := initSubsystems(cfg); err != nil {
		printError(out, err)
		return 1
	}

	var rel releaser
	defer rel.release()

	window, r, err := createWindow(cfg)
	if err != nil {
		printError(out, err)
		return 1
	}
	rel.add("window", func() { window.Destroy() })
	rel.add("renderer", func() { r.Destroy() })

	font, err := openFont(cfg.asset("font", cfg.fontFile), cfg.fontSize)
	if err != nil {
		printError(out, err)
		return 1
	}
	rel.add("font", func() { font.Close() })

	text, err := renderText(r, font, cfg.message, cfg.textColor)
	if err != nil {
		printError(out, err)
		return 1
	}
	rel.add("text", func() { text.Destroy() })

	sheet, err := loadTexture(r, cfg.asset("img", cfg.imageFile))
	if err != nil {
		printError(out, err)
		return 1
	}
	rel.add("spritesheet", func() { sheet.Destroy() })
	_, _, sw, sh, err := sheet.Query()
	if err != nil {
		printError(out, loadError("SDL_QueryTexture", err))
		return 1
	}
	if err := checkSheet(sw, sh, cfg.Clips()); err != nil {
		printError(out, err)
		return 1
	}

	song, err := loadMusic(cfg.asset("audio", cfg.musicFile))
	if err != nil {
		printError(out, err)
		return 1
	}
	rel.add("music", func() {
		mix.HaltMusic()
		song.Free()
	})
	track := &mixerTrack{music: song, loops: cfg.musicLoops}

	g, err := NewGame(cfg, r, sheet, text, track)
	if err != nil {
		printError(out, err)
		return 1
	}
	logger.Info("window open", "title", cfg.title, "width", cfg.ScreenWidth(), "height", cfg.ScreenHeight(),
		"res", cfg.resourceRoot)

	if err := track.Play(); err != nil {
		logger.Warn("could not play music", "err", err)
	}
	g.Run()
	logger.Info("shutting down")
	return 0
}
