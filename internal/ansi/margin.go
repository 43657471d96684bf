// Package ansi renders the escape sequences that define and clear a
// terminal scrolling region. This is a leaf package — no I/O beyond the
// writer handed to WriteBlankLines, no internal imports, no logging.
package ansi

import (
	"io"
	"strconv"
)

// RestoreCursor moves the cursor back to the position saved by SetMargin
// (DECRC).
const RestoreCursor = "\x1b8"

// blankChunk is the write unit for WriteBlankLines.
var blankChunk = func() (b [64]byte) {
	for i := range b {
		b[i] = '\n'
	}
	return b
}()

// SetMargin renders the sequence that restricts scrolling to rows
// top..top+height (DECSTBM), moves the cursor to (top, 1), and saves the
// cursor position (DECSC). Numeric fields render as decimal ASCII with no
// leading zeros; the capacity covers the worst-case digit widths.
func SetMargin(top, height int) []byte {
	buf := make([]byte, 0, 64)
	buf = append(buf, "\x1b["...)
	buf = strconv.AppendInt(buf, int64(top), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(top+height), 10)
	buf = append(buf, "r\x1b["...)
	buf = strconv.AppendInt(buf, int64(top), 10)
	buf = append(buf, ";1H\x1b7"...)
	return buf
}

// ResetMargin renders the sequence that saves the cursor, opens the
// scrolling region back up to the full screen (rows 1..totalRows), and
// restores the cursor.
func ResetMargin(totalRows int) []byte {
	buf := make([]byte, 0, 64)
	buf = append(buf, "\x1b[s\x1b[1;"...)
	buf = strconv.AppendInt(buf, int64(totalRows), 10)
	buf = append(buf, "r\x1b[u"...)
	return buf
}

// WriteBlankLines writes exactly n newline bytes to w, chunked through a
// fixed block so any n costs no allocation.
func WriteBlankLines(w io.Writer, n int) error {
	for n > len(blankChunk) {
		if _, err := w.Write(blankChunk[:]); err != nil {
			return err
		}
		n -= len(blankChunk)
	}
	if n <= 0 {
		return nil
	}
	_, err := w.Write(blankChunk[:n])
	return err
}
