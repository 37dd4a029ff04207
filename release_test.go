package main

import (
	"reflect"
	"testing"
)

func TestReleaseOrder(t *testing.T) {
	var got []string
	var r releaser
	for _, name := range []string{"window", "renderer", "font", "text"} {
		name := name
		r.add(name, func() { got = append(got, name) })
	}
	r.release()
	want := []string{"text", "font", "renderer", "window"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Release order should be %v, but was %v", want, got)
	}

	r.release()
	if len(got) != 4 {
		t.Errorf("A second release should do nothing, but ran %v", got[4:])
	}
}

func TestReleasePartial(t *testing.T) {
	released := map[string]bool{}
	acquire := func(r *releaser, names ...string) {
		for _, n := range names {
			n := n
			r.add(n, func() { released[n] = true })
		}
	}

	var r releaser
	acquire(&r, "window", "renderer")
	// font failed to open; nothing after it was acquired
	r.release()

	if !released["window"] || !released["renderer"] {
		t.Errorf("Everything acquired should be released, got %v", released)
	}
	if released["font"] || released["music"] {
		t.Errorf("Nothing unacquired should be released, got %v", released)
	}
}
