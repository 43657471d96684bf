// Package scroll decides where the pinned region lives on screen and
// holds the shared geometry the signal handlers read.
package scroll

// Plan computes the top row for a pinned region of the given height.
//
// When the region fits below the cursor, the top row is the cursor row and
// no scrolling is needed. When it would run past the terminal bottom,
// insert reports that height blank lines must first scroll existing
// content up, and the top row becomes totalRows-height. That result can be
// negative when height exceeds the terminal; callers must treat a negative
// top as "cannot pin" and skip applying it.
func Plan(totalRows, cursorRow, height int) (top int, insert bool) {
	if totalRows < cursorRow+height {
		return totalRows - height, true
	}
	return cursorRow, false
}
