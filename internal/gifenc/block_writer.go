package gifenc

import "io"

// blockWriter packages a byte stream into GIF data sub-blocks: runs of at
// most 255 bytes, each preceded by its length, ended by a zero-length block.
type blockWriter struct {
	w   io.Writer
	buf [256]byte
	n   int
}

func (b *blockWriter) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		space := 255 - b.n
		if space == 0 {
			if err := b.flush(); err != nil {
				return total, err
			}
			space = 255
		}
		if space > len(p) {
			space = len(p)
		}
		copy(b.buf[1+b.n:], p[:space])
		b.n += space
		p = p[space:]
		total += space
	}
	return total, nil
}

func (b *blockWriter) flush() error {
	if b.n == 0 {
		return nil
	}
	b.buf[0] = byte(b.n)
	_, err := b.w.Write(b.buf[:b.n+1])
	b.n = 0
	return err
}

// Close flushes the pending sub-block and writes the block terminator.
func (b *blockWriter) Close() error {
	if err := b.flush(); err != nil {
		return err
	}
	_, err := b.w.Write([]byte{0x00})
	return err
}
