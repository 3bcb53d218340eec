// Package session orchestrates one render: it resolves the target instant,
// expands the remaining duration frame by frame, and streams the encoded
// animation through the sink, honoring the ordering guarantee that the
// completion callback fires no earlier than the final flush.
package session
