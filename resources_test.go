package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flopp/go-findfont"
	"github.com/veandco/go-sdl2/ttf"
)

func TestResourcePath(t *testing.T) {
	tests := []struct {
		base, sub, want string
	}{
		{"/opt/sprites/bin/", "font", "/opt/sprites/res/font"},
		{"/opt/sprites/bin", "img", "/opt/sprites/res/img"},
		{"/home/me/sprites/", "audio", "/home/me/sprites/res/audio"},
		{"/a/bin/b/bin/", "font", "/a/bin/b/res/font"},
		{"/usr/binaries/", "font", "/usr/binaries/res/font"},
		{"/bin/", "img", "/res/img"},
		{"build/bin", "img", "build/res/img"},
		{"bin", "img", "res/img"},
	}
	for _, tt := range tests {
		got := resourcePath(filepath.FromSlash(tt.base), tt.sub)
		if want := filepath.FromSlash(tt.want); got != want {
			t.Errorf("resourcePath(%q, %q) should be %q, but is %q", tt.base, tt.sub, want, got)
		}
	}
}

func TestOpenFontMissingGivesHintOnly(t *testing.T) {
	fonts := findfont.List()
	if len(fonts) == 0 {
		t.Skip("no system fonts installed")
	}
	if err := ttf.Init(); err != nil {
		t.Fatal(err)
	}
	defer ttf.Quit()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	missing := filepath.Join(t.TempDir(), filepath.Base(fonts[0]))
	f, err := openFont(missing, 12)
	if err == nil {
		f.Close()
		t.Fatal("A font outside the resource dir should not be opened")
	}
	if !errors.Is(err, ErrLoad) || !strings.HasPrefix(err.Error(), "TTF_OpenFont Error: ") {
		t.Errorf("Missing font should be a TTF_OpenFont load error, got %v", err)
	}
	if !strings.Contains(buf.String(), "hint:") {
		t.Errorf("Log should carry a hint about the system copy, got %q", buf.String())
	}
}
