package render_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"tickdown/internal/fields"
	"tickdown/internal/render"
)

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New(render.Options{
		Width:      640,
		Height:     150,
		Color:      "ffe600",
		Background: "000000",
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return r
}

func snapshot(img *image.RGBA) []byte {
	cp := make([]byte, len(img.Pix))
	copy(cp, img.Pix)
	return cp
}

func TestCountdownIsDeterministic(t *testing.T) {
	set := fields.Decompose(90_061_000)

	first := snapshot(newTestRenderer(t).Countdown(set))
	second := snapshot(newTestRenderer(t).Countdown(set))
	if !bytes.Equal(first, second) {
		t.Fatal("identical inputs should produce byte-identical pixels")
	}
}

func TestCountdownFillsBackground(t *testing.T) {
	img := newTestRenderer(t).Countdown(fields.Set{})
	want := color.RGBA{0, 0, 0, 255}
	for _, pt := range []image.Point{{0, 0}, {639, 0}, {0, 149}, {639, 149}} {
		if got := img.RGBAAt(pt.X, pt.Y); got != want {
			t.Fatalf("corner %v = %v, want background %v", pt, got, want)
		}
	}
}

func TestCountdownDrawsInTextColor(t *testing.T) {
	img := newTestRenderer(t).Countdown(fields.Set{Days: 88, Hours: 88, Minutes: 88, Seconds: 88})
	found := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 || img.Pix[i+1] > 0 || img.Pix[i+2] > 0 {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected non-background pixels from rendered numerals")
	}
}

func TestDifferentFieldSetsDiffer(t *testing.T) {
	r := newTestRenderer(t)
	first := snapshot(r.Countdown(fields.Set{Seconds: 1}))
	second := snapshot(r.Countdown(fields.Set{Seconds: 2}))
	if bytes.Equal(first, second) {
		t.Fatal("different field sets should render differently")
	}
}

func TestBufferIsReusedInPlace(t *testing.T) {
	r := newTestRenderer(t)
	first := r.Countdown(fields.Set{Seconds: 1})
	second := r.Countdown(fields.Set{Seconds: 2})
	if first != second {
		t.Fatal("renderer should reuse one backing buffer")
	}
}

func TestMessageCentersText(t *testing.T) {
	r := newTestRenderer(t)
	img := r.Message("Date has passed!")

	// Text must appear near the vertical center and nowhere near the top edge.
	rowHasInk := func(y int) bool {
		for x := 0; x < 640; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 0 || c.G > 0 || c.B > 0 {
				return true
			}
		}
		return false
	}
	if !rowHasInk(75) {
		t.Fatal("expected ink on the center row")
	}
	if rowHasInk(0) {
		t.Fatal("expected empty top edge")
	}
}

func TestMessageDiffersFromCountdown(t *testing.T) {
	r := newTestRenderer(t)
	countdown := snapshot(r.Countdown(fields.Set{}))
	message := snapshot(r.Message("Date has passed!"))
	if bytes.Equal(countdown, message) {
		t.Fatal("message frame should differ from countdown frame")
	}
}
