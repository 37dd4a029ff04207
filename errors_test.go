package main

import (
	"bytes"
	"errors"
	"testing"
)

func TestDiagnosticLine(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, loadError("Mix_LoadMUS", errors.New("Couldn't open 'song.ogg'")))
	want := "Mix_LoadMUS Error: Couldn't open 'song.ogg'\n"
	if buf.String() != want {
		t.Errorf("Diagnostic should be %q, but is %q", want, buf.String())
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("No available video device")
	err := initError("SDL_Init", cause)
	if !errors.Is(err, ErrInit) {
		t.Errorf("%v should be an init error", err)
	}
	if errors.Is(err, ErrLoad) {
		t.Errorf("%v should not be a load error", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("%v should wrap its cause", err)
	}
	if err := loadError("LoadTexture", cause); !errors.Is(err, ErrLoad) {
		t.Errorf("%v should be a load error", err)
	}
}
