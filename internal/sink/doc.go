// Package sink writes encoded animation bytes to disk behind an asynchronous
// boundary: the encoder produces on the session goroutine while a background
// writer drains to the file, signaling completion only after a durable flush.
package sink
