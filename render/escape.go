package render

import (
	"encoding/base64"
	"strconv"

	"tuicore/geom"
)

// appendCursorMove appends a CSI cursor-position sequence (1-based).
func appendCursorMove(buf []byte, row, col int) []byte {
	buf = append(buf, '\x1b', '[')
	buf = strconv.AppendInt(buf, int64(row), 10)
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(col), 10)
	return append(buf, 'H')
}

// appendCursorForward appends a CSI cursor-forward (CUF) sequence
// moving the cursor n columns to the right, relative to wherever it
// currently sits. n<=0 appends nothing.
func appendCursorForward(buf []byte, n int) []byte {
	if n <= 0 {
		return buf
	}
	buf = append(buf, '\x1b', '[')
	buf = strconv.AppendInt(buf, int64(n), 10)
	return append(buf, 'C')
}

// appendSGRReset appends the SGR reset sequence.
func appendSGRReset(buf []byte) []byte {
	return append(buf, '\x1b', '[', '0', 'm')
}

// appendSGR appends the SGR sequence selecting st's colors and attributes.
// Always emits a leading reset so sequences never depend on prior state.
func appendSGR(buf []byte, st geom.Style) []byte {
	buf = append(buf, '\x1b', '[', '0')
	if st.Bold {
		buf = append(buf, ';', '1')
	}
	if st.Dim {
		buf = append(buf, ';', '2')
	}
	if st.Italic {
		buf = append(buf, ';', '3')
	}
	if st.Underline {
		buf = append(buf, ';', '4')
	}
	if st.Blink {
		buf = append(buf, ';', '5')
	}
	if st.Reverse {
		buf = append(buf, ';', '7')
	}
	if st.Strike {
		buf = append(buf, ';', '9')
	}
	buf = appendColor(buf, st.Fg, 38)
	buf = appendColor(buf, st.Bg, 48)
	return append(buf, 'm')
}

// appendColor appends the ";..." parameters selecting c as the base
// (38=fg, 48=bg) SGR color. ColorDefault emits nothing (already reset).
func appendColor(buf []byte, c geom.Color, base int) []byte {
	switch c.Kind {
	case geom.ColorDefault:
		return buf
	case geom.ColorNamed:
		// Named colors map onto the classic 30-37/90-97 or, via the
		// indexed form, 38;5;n — we use the indexed form uniformly so
		// the emission path has one shape regardless of color kind.
		return appendIndexed(buf, base, int(c.Index))
	case geom.ColorIndexed:
		return appendIndexed(buf, base, int(c.Index))
	case geom.ColorRGB:
		buf = append(buf, ';')
		buf = strconv.AppendInt(buf, int64(base), 10)
		buf = append(buf, ';', '2', ';')
		buf = strconv.AppendInt(buf, int64(c.R), 10)
		buf = append(buf, ';')
		buf = strconv.AppendInt(buf, int64(c.G), 10)
		buf = append(buf, ';')
		buf = strconv.AppendInt(buf, int64(c.B), 10)
		return buf
	default:
		return buf
	}
}

func appendIndexed(buf []byte, base, idx int) []byte {
	buf = append(buf, ';')
	buf = strconv.AppendInt(buf, int64(base), 10)
	buf = append(buf, ';', '5', ';')
	buf = strconv.AppendInt(buf, int64(idx), 10)
	return buf
}

// Mode toggle sequences.
const (
	SeqCursorShow     = "\x1b[?25h"
	SeqCursorHide     = "\x1b[?25l"
	SeqAltScreenOn    = "\x1b[?1049h"
	SeqAltScreenOff   = "\x1b[?1049l"
	SeqBracketPasteOn = "\x1b[?2004h"
	SeqBracketPasteOff = "\x1b[?2004l"
	SeqMouseBasicOn   = "\x1b[?1000h"
	SeqMouseBasicOff  = "\x1b[?1000l"
	SeqMouseMotionOn  = "\x1b[?1003h"
	SeqMouseMotionOff = "\x1b[?1003l"
	SeqMouseSGROn     = "\x1b[?1006h"
	SeqMouseSGROff    = "\x1b[?1006l"
)

// OSCTitle builds an OSC 0 window-title sequence.
func OSCTitle(text string) string {
	return "\x1b]0;" + text + "\x07"
}

// OSCClipboard builds an OSC 52 clipboard-set sequence for selection c
// ("c" = clipboard, "p" = primary).
func OSCClipboard(c string, data []byte) string {
	return "\x1b]52;" + c + ";" + base64.StdEncoding.EncodeToString(data) + "\x07"
}
