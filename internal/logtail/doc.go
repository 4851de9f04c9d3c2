// Package logtail reads the end of marquee's own log file for the in-app log
// panel.
//
// # Reading
//
// Read keeps a ring buffer of maxLines entries while scanning the file once,
// so memory stays O(maxLines) whatever the file size:
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// A missing file is not an error; the panel simply shows nothing.
//
// # Parsing
//
// marquee logs through slog.TextHandler, which writes logfmt-style records:
//
//	time=2026-10-19T10:04:05.123+02:00 level=INFO msg="catalog loaded" characters=7438
//
// Parse splits such a line into time, level, message and the remaining
// attributes, unquoting Go-quoted values. Lines from any other source are
// kept verbatim as the message so nothing is dropped from the panel.
package logtail
