package main

import (
	"github.com/veandco/go-sdl2/mix"
)

type musicPlayer interface {
	// Playing stays true while paused.
	Playing() bool
	Paused() bool
	Play() error
	Pause()
	Resume()
	Halt()
}

// mixerTrack drives SDL_mixer's single music channel.
type mixerTrack struct {
	music *mix.Music
	loops int
}

func (t *mixerTrack) Playing() bool { return mix.PlayingMusic() }
func (t *mixerTrack) Paused() bool  { return mix.PausedMusic() }
func (t *mixerTrack) Play() error   { return t.music.Play(t.loops) }
func (t *mixerTrack) Pause()        { mix.PauseMusic() }
func (t *mixerTrack) Resume()       { mix.ResumeMusic() }
func (t *mixerTrack) Halt()         { mix.HaltMusic() }

// toggleMusic starts the track if nothing is playing, otherwise flips
// between paused and playing. State is read at call time.
func toggleMusic(p musicPlayer) error {
	if !p.Playing() {
		return p.Play()
	}
	if p.Paused() {
		p.Resume()
	} else {
		p.Pause()
	}
	return nil
}
