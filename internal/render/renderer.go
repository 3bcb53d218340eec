package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tickdown/internal/fields"
)

// Options fixes the canvas geometry and colors for a renderer's lifetime.
// Colors are six-digit hex strings without a leading '#'.
type Options struct {
	Width      int
	Height     int
	Color      string
	Background string
}

var upper = cases.Upper(language.English)

var captions = [4]string{
	upper.String("days"),
	upper.String("hours"),
	upper.String("minutes"),
	upper.String("seconds"),
}

// Renderer paints countdown and message frames onto a single reused RGBA
// buffer. Rendering is deterministic: identical inputs produce byte-identical
// pixels. The buffer returned by Countdown and Message is only valid until the
// next render call.
type Renderer struct {
	opts Options
	buf  *image.RGBA
	dc   *gg.Context

	numeralBold    font.Face
	numeralRegular font.Face
	caption        font.Face
	message        font.Face
}

// New constructs a renderer and its backing buffer.
func New(opts Options) (*Renderer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	buf := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	return &Renderer{
		opts:           opts,
		buf:            buf,
		dc:             gg.NewContextForRGBA(buf),
		numeralBold:    truetype.NewFace(bold, &truetype.Options{Size: numeralPointSize}),
		numeralRegular: truetype.NewFace(regular, &truetype.Options{Size: numeralPointSize}),
		caption:        truetype.NewFace(regular, &truetype.Options{Size: captionPointSize}),
		message:        truetype.NewFace(bold, &truetype.Options{Size: messageFontSize(opts.Width)}),
	}, nil
}

// Countdown paints one frame of the running countdown: four labeled field
// groups with divider strokes between them. The days group is emphasized in
// bold; the remaining groups use the regular weight.
func (r *Renderer) Countdown(set fields.Set) *image.RGBA {
	r.clear()
	r.dc.SetHexColor(r.opts.Color)

	days, hours, minutes, seconds := set.Strings()
	groups := []struct {
		centerX float64
		value   string
		face    font.Face
	}{
		{daysCenterX, days, r.numeralBold},
		{hoursCenterX, hours, r.numeralRegular},
		{minutesCenterX, minutes, r.numeralRegular},
		{secondsCenterX, seconds, r.numeralRegular},
	}

	for i, group := range groups {
		r.dc.SetFontFace(group.face)
		r.dc.DrawStringAnchored(group.value, group.centerX, numeralCenterY, 0.5, 0.5)
		r.dc.SetFontFace(r.caption)
		r.dc.DrawStringAnchored(captions[i], group.centerX, captionCenterY, 0.5, 0.5)
	}

	r.dc.SetLineWidth(dividerWidth)
	for _, x := range dividerXs {
		r.dc.DrawLine(x, dividerTop, x, dividerBottom)
	}
	r.dc.Stroke()

	return r.buf
}

// Message paints the terminal frame: a single string centered on both axes.
func (r *Renderer) Message(text string) *image.RGBA {
	r.clear()
	r.dc.SetHexColor(r.opts.Color)
	r.dc.SetFontFace(r.message)
	r.dc.DrawStringAnchored(text, float64(r.opts.Width)/2, float64(r.opts.Height)/2, 0.5, 0.5)
	return r.buf
}

func (r *Renderer) clear() {
	r.dc.SetHexColor(r.opts.Background)
	r.dc.Clear()
}
