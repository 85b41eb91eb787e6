package input

// Key is a special key or the KeyChar placeholder for an ordinary rune.
type Key int

const (
	KeyNull Key = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
	KeySpace

	// Cursor movement
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft

	// Navigation
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyDelete
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Mod is a bitset of modifier keys, decoded from xterm's CSI modifier
// parameter (value-1, bit 0 shift / bit 1 alt / bit 2 ctrl).
type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModAlt   Mod = 1 << 1
	ModCtrl  Mod = 1 << 2
)

// KeyEvent is a single keystroke.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

func decodeXtermMod(code int) Mod {
	code--
	var m Mod
	if code&1 != 0 {
		m |= ModShift
	}
	if code&2 != 0 {
		m |= ModAlt
	}
	if code&4 != 0 {
		m |= ModCtrl
	}
	return m
}
