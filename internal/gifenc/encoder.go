package gifenc

import (
	"compress/lzw"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/soniakeys/quant/median"

	"tickdown/internal/faults"
)

// Defaults match the animation contract: one simulated second per frame,
// loop forever, full 256-color palettes.
const (
	DefaultDelayCS     = 100
	DefaultPaletteSize = 256
)

type state int

const (
	stateCreated state = iota
	stateStarted
	stateFinished
)

// Options fixes the container parameters for an encoder's lifetime.
type Options struct {
	Width  int
	Height int
	// DelayCS is the inter-frame delay in centiseconds.
	DelayCS int
	// LoopCount is the NETSCAPE repeat count; 0 loops forever.
	LoopCount int
	// PaletteSize bounds the per-frame palette, at most 256 colors.
	PaletteSize int
}

// Encoder streams an animated GIF to an io.Writer one frame at a time. It
// never buffers the full animation: Start emits the container preamble, each
// AddFrame emits a complete frame block, and Finish emits the trailer.
//
// The encoder is a strict state machine. AddFrame before Start or after
// Finish fails with ErrSequence. Frames are written in call order with no
// reordering or deduplication.
type Encoder struct {
	w      io.Writer
	opts   Options
	state  state
	frames int
	err    error
}

// New constructs an encoder writing to w. Zero option fields fall back to the
// package defaults.
func New(w io.Writer, opts Options) *Encoder {
	if opts.DelayCS <= 0 {
		opts.DelayCS = DefaultDelayCS
	}
	if opts.PaletteSize <= 0 || opts.PaletteSize > 256 {
		opts.PaletteSize = DefaultPaletteSize
	}
	return &Encoder{w: w, opts: opts}
}

// Frames reports how many frames have been added so far.
func (e *Encoder) Frames() int {
	return e.frames
}

// Start writes the GIF89a header, logical screen descriptor, and the
// loop-control application extension. It must be called exactly once before
// any frame is added.
func (e *Encoder) Start() error {
	if e.state != stateCreated {
		return faults.Wrap(faults.ErrSequence, "encoder", "start", "already started", nil)
	}
	e.state = stateStarted

	e.write([]byte("GIF89a"))
	e.writeUint16(uint16(e.opts.Width))
	e.writeUint16(uint16(e.opts.Height))
	// No global color table; color resolution 8 bits per primary.
	e.write([]byte{0x70, 0x00, 0x00})

	e.write([]byte{0x21, 0xFF, 0x0B})
	e.write([]byte("NETSCAPE2.0"))
	e.write([]byte{0x03, 0x01})
	e.writeUint16(uint16(e.opts.LoopCount))
	e.write([]byte{0x00})

	return e.flushErr("start")
}

// AddFrame quantizes the image to a palette, compresses the indexed pixels,
// and appends one frame block carrying the fixed inter-frame delay.
func (e *Encoder) AddFrame(img image.Image) error {
	switch e.state {
	case stateCreated:
		return faults.Wrap(faults.ErrSequence, "encoder", "add frame", "before start", nil)
	case stateFinished:
		return faults.Wrap(faults.ErrSequence, "encoder", "add frame", "after finish", nil)
	}
	if e.err != nil {
		return e.flushErr("add frame")
	}

	bounds := img.Bounds()
	if bounds.Dx() != e.opts.Width || bounds.Dy() != e.opts.Height {
		return faults.Wrap(faults.ErrSequence, "encoder", "add frame", "frame size does not match canvas", nil)
	}

	paletted := e.quantize(img)
	tableSize, sizeBits := paletteTableSize(len(paletted.Palette))

	// Graphic control extension: no disposal, no transparency, fixed delay.
	e.write([]byte{0x21, 0xF9, 0x04, 0x00})
	e.writeUint16(uint16(e.opts.DelayCS))
	e.write([]byte{0x00, 0x00})

	// Image descriptor with a local color table.
	e.write([]byte{0x2C})
	e.writeUint16(0)
	e.writeUint16(0)
	e.writeUint16(uint16(e.opts.Width))
	e.writeUint16(uint16(e.opts.Height))
	e.write([]byte{0x80 | byte(sizeBits-1)})

	e.writeColorTable(paletted.Palette, tableSize)
	e.writeIndexedData(paletted, sizeBits)

	if e.err == nil {
		e.frames++
	}
	return e.flushErr("add frame")
}

// Finish writes the trailer and seals the stream. No frames may be added
// afterward.
func (e *Encoder) Finish() error {
	switch e.state {
	case stateCreated:
		return faults.Wrap(faults.ErrSequence, "encoder", "finish", "before start", nil)
	case stateFinished:
		return faults.Wrap(faults.ErrSequence, "encoder", "finish", "already finished", nil)
	}
	e.state = stateFinished

	e.write([]byte{0x3B})
	return e.flushErr("finish")
}

func (e *Encoder) quantize(img image.Image) *image.Paletted {
	quantizer := median.Quantizer(e.opts.PaletteSize)
	palette := quantizer.Quantize(make(color.Palette, 0, e.opts.PaletteSize), img)

	paletted := image.NewPaletted(image.Rect(0, 0, e.opts.Width, e.opts.Height), palette)
	draw.Draw(paletted, paletted.Bounds(), img, img.Bounds().Min, draw.Src)
	return paletted
}

func (e *Encoder) writeColorTable(palette color.Palette, tableSize int) {
	table := make([]byte, tableSize*3)
	for i, c := range palette {
		r, g, b, _ := c.RGBA()
		table[i*3] = byte(r >> 8)
		table[i*3+1] = byte(g >> 8)
		table[i*3+2] = byte(b >> 8)
	}
	e.write(table)
}

func (e *Encoder) writeIndexedData(paletted *image.Paletted, sizeBits int) {
	litWidth := sizeBits
	if litWidth < 2 {
		litWidth = 2
	}
	e.write([]byte{byte(litWidth)})

	if e.err != nil {
		return
	}
	blocks := &blockWriter{w: e.w}
	compressor := lzw.NewWriter(blocks, lzw.LSB, litWidth)
	for y := 0; y < e.opts.Height; y++ {
		row := paletted.Pix[y*paletted.Stride : y*paletted.Stride+e.opts.Width]
		if _, err := compressor.Write(row); err != nil {
			e.err = err
			return
		}
	}
	if err := compressor.Close(); err != nil {
		e.err = err
		return
	}
	if err := blocks.Close(); err != nil {
		e.err = err
	}
}

// paletteTableSize pads a palette length to the next power of two (minimum 2)
// and reports the matching bit width for the descriptor and LZW code size.
func paletteTableSize(colors int) (tableSize, sizeBits int) {
	tableSize = 2
	sizeBits = 1
	for tableSize < colors {
		tableSize *= 2
		sizeBits++
	}
	return tableSize, sizeBits
}

func (e *Encoder) write(p []byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(p)
}

func (e *Encoder) writeUint16(v uint16) {
	e.write([]byte{byte(v), byte(v >> 8)})
}

func (e *Encoder) flushErr(operation string) error {
	if e.err == nil {
		return nil
	}
	return faults.Wrap(faults.ErrIO, "encoder", operation, "", e.err)
}
