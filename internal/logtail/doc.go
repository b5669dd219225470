// Package logtail reads the tail of the Atlas log file and turns its JSON
// records into compact single-line text for the log overlay.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays proportional to the requested tail rather than the file
// size. A non-positive maxLines returns the whole file. A missing file is not
// an error; it simply has no lines yet.
//
//	lines, err := logtail.Read(cfg.LogPath(), 200)
//
// # Formatting
//
// Parse decodes one slog JSON record into an Entry:
//
//	{"time":"2025-10-08T21:01:05Z","level":"INFO","msg":"countries loaded","count":250}
//
// becomes
//
//	2025-10-08 21:01:05 INFO countries loaded count=250
//
// Attributes are sorted by key. Lines that are not JSON are returned as the
// message so nothing in the file is hidden. Colouring by level is left to the
// UI, which knows the active theme.
package logtail
