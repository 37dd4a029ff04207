package main

import (
	"path/filepath"

	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
)

type Config struct {
	title            string
	windowX, windowY int32

	baseWidth, baseHeight int32
	scale                 int32

	step int32 // pixels moved per key press, both axes

	clipWidth, clipHeight int32
	clipCount             int

	audioFrequency int
	audioFormat    uint16
	audioChannels  int
	audioChunk     int
	musicLoops     int // -1 loops forever

	resourceRoot string // holds font/, img/ and audio/

	fontFile  string
	fontSize  int
	message   string
	textColor sdl.Color
	imageFile string
	musicFile string
}

func DefaultConfig() *Config {
	c := Config{}
	c.title = "tbejos Game"
	c.windowX = 100
	c.windowY = 100
	c.baseWidth = 244
	c.baseHeight = 288
	c.scale = 3
	c.step = 10
	c.clipWidth = 100
	c.clipHeight = 100
	c.clipCount = 4
	c.audioFrequency = 44100
	c.audioFormat = uint16(mix.DEFAULT_FORMAT)
	c.audioChannels = 2
	c.audioChunk = 2048
	c.musicLoops = -1
	c.resourceRoot = resourcePath(sdl.GetBasePath(), "")
	c.fontFile = "Inconsolata-LGC.ttf"
	c.fontSize = 48
	c.message = "TTF fonts are cool!"
	c.textColor = sdl.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	c.imageFile = "image.png"
	c.musicFile = "(c)song.ogg"
	return &c
}

// asset returns the path of file in the sub asset directory.
func (c *Config) asset(sub, file string) string {
	return filepath.Join(c.resourceRoot, sub, file)
}

func (c *Config) ScreenWidth() int32 {
	return c.baseWidth * c.scale
}

func (c *Config) ScreenHeight() int32 {
	return c.baseHeight * c.scale
}

// Clips lays the spritesheet out as a two-row grid, filled column by column.
func (c *Config) Clips() []sdl.Rect {
	clips := make([]sdl.Rect, c.clipCount)
	for i := range clips {
		clips[i] = sdl.Rect{
			X: int32(i/2) * c.clipWidth,
			Y: int32(i%2) * c.clipHeight,
			W: c.clipWidth,
			H: c.clipHeight,
		}
	}
	return clips
}
