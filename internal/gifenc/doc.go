// Package gifenc implements a streaming animated GIF encoder.
//
// The container layout follows GIF89a: header and logical screen descriptor,
// a NETSCAPE2.0 loop extension, then per frame a graphic control extension,
// image descriptor, local color table, and LZW-compressed indexed pixels,
// closed by the trailer byte. Palette quantization uses median cut; the
// bit-level compression is compress/lzw in LSB order as GIF requires.
package gifenc
