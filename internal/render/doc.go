// Package render paints countdown frames onto a pixel buffer.
//
// The drawing primitives come from fogleman/gg; fonts are the embedded Go
// fonts, so no filesystem access happens at render time and output is fully
// deterministic.
package render
