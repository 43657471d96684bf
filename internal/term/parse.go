package term

// parseCursorReport validates and extracts the row from a DSR response of
// the exact form ESC [ <digits> ; <digits> R with R as the final byte.
// The column is validated and discarded. Anything else — short buffer,
// wrong prefix, missing digits, trailing bytes after R — is ErrBadResponse,
// never a zero or partial row.
func parseCursorReport(buf []byte) (int, error) {
	if len(buf) < 6 || buf[0] != 0x1b || buf[1] != '[' {
		return 0, ErrBadResponse
	}

	i := 2
	row := 0
	start := i
	for i < len(buf) && isDigit(buf[i]) {
		row = row*10 + int(buf[i]-'0')
		if row > 1<<31-1 {
			return 0, ErrBadResponse
		}
		i++
	}
	if i == start || i >= len(buf) || buf[i] != ';' {
		return 0, ErrBadResponse
	}

	i++
	start = i
	for i < len(buf) && isDigit(buf[i]) {
		i++
	}
	if i == start || i != len(buf)-1 || buf[i] != 'R' {
		return 0, ErrBadResponse
	}

	// Rows are 1-based; a zero row is a malformed report, not a position.
	if row == 0 {
		return 0, ErrBadResponse
	}
	return row, nil
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
