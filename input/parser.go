// Package input turns a raw terminal byte stream into semantic
// events: keys, SGR mouse reports, focus in/out, bracketed-paste
// start/end, and OSC color-report replies.
package input

import (
	"strconv"
	"strings"
	"time"
)

const (
	escTimeout = 10 * time.Millisecond
	seqTimeout = 50 * time.Millisecond
)

// Parser is stateless between Run calls; all sequence state lives on
// the stack of the in-progress parse.
type Parser struct{}

// NewParser constructs a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Run drains raw until it's closed, emitting Events on out, then
// closes out. raw is expected to be fed by a single dedicated reader
// goroutine so Run never races with whatever produces raw.
func (p *Parser) Run(raw <-chan byte, out chan<- Event) {
	defer close(out)
	for {
		b, ok := <-raw
		if !ok {
			return
		}
		if b == 0x1b {
			p.processEsc(raw, out)
		} else {
			p.processByte(b, out)
		}
	}
}

func readByteTimeout(raw <-chan byte, timeout time.Duration) (byte, bool) {
	select {
	case b, ok := <-raw:
		return b, ok
	case <-time.After(timeout):
		return 0, false
	}
}

func emitKey(out chan<- Event, ev KeyEvent) {
	out <- Event{Kind: EventKey, Key: ev}
}

// processByte handles a plain (non-ESC) byte: control characters map
// to special keys or Ctrl+letter, DEL maps to Backspace, everything
// else is a literal rune.
func (p *Parser) processByte(b byte, out chan<- Event) {
	switch {
	case b <= 0x1f:
		switch b {
		case 0x0d:
			emitKey(out, KeyEvent{Key: KeyEnter})
		case 0x09:
			emitKey(out, KeyEvent{Key: KeyTab})
		case 0x08:
			emitKey(out, KeyEvent{Key: KeyBackspace})
		default:
			emitKey(out, KeyEvent{Key: KeyChar, Rune: rune(b + 0x60), Mod: ModCtrl})
		}
	case b == 0x7f:
		emitKey(out, KeyEvent{Key: KeyBackspace})
	case b == ' ':
		emitKey(out, KeyEvent{Key: KeySpace, Rune: ' '})
	default:
		emitKey(out, KeyEvent{Key: KeyChar, Rune: rune(b)})
	}
}

// processEsc has just consumed the lead ESC byte; it waits briefly
// for a follow-up byte to distinguish a bare ESC keypress from the
// start of CSI/SS3/OSC/DCS.
func (p *Parser) processEsc(raw <-chan byte, out chan<- Event) {
	next, ok := readByteTimeout(raw, escTimeout)
	if !ok {
		emitKey(out, KeyEvent{Key: KeyEsc})
		return
	}
	switch next {
	case '[':
		p.parseCSI(raw, out)
	case 'O':
		p.parseSS3(raw, out)
	case ']':
		p.parseOSC(raw, out)
	case 'P':
		p.parseDCS(raw)
	default:
		emitKey(out, KeyEvent{Key: KeyChar, Rune: rune(next), Mod: ModAlt})
	}
}

// parseCSI reads CSI parameter/intermediate bytes (0x20-0x3F) up to
// the final byte (0x40-0x7E) and dispatches on it.
func (p *Parser) parseCSI(raw <-chan byte, out chan<- Event) {
	var params []byte
	for {
		b, ok := readByteTimeout(raw, seqTimeout)
		if !ok {
			return
		}
		if b >= 0x40 && b <= 0x7e {
			p.dispatchCSI(params, b, out)
			return
		}
		params = append(params, b)
	}
}

func (p *Parser) dispatchCSI(params []byte, final byte, out chan<- Event) {
	s := string(params)

	if strings.HasPrefix(s, "<") && (final == 'M' || final == 'm') {
		p.dispatchSGRMouse(s[1:], final, out)
		return
	}

	switch final {
	case 'A':
		emitKey(out, keyWithMod(KeyArrowUp, s))
	case 'B':
		emitKey(out, keyWithMod(KeyArrowDown, s))
	case 'C':
		emitKey(out, keyWithMod(KeyArrowRight, s))
	case 'D':
		emitKey(out, keyWithMod(KeyArrowLeft, s))
	case 'H':
		emitKey(out, keyWithMod(KeyHome, s))
	case 'F':
		emitKey(out, keyWithMod(KeyEnd, s))
	case 'I':
		out <- Event{Kind: EventFocusIn}
	case 'O':
		out <- Event{Kind: EventFocusOut}
	case '~':
		p.dispatchTilde(s, out)
	}
}

// keyWithMod splits "<mod>" trailing params (e.g. "1;5" for Ctrl)
// from a CSI letter-final sequence with no numeric key code.
func keyWithMod(k Key, params string) KeyEvent {
	mod := ModNone
	if i := strings.IndexByte(params, ';'); i >= 0 {
		if code, err := strconv.Atoi(params[i+1:]); err == nil {
			mod = decodeXtermMod(code)
		}
	}
	return KeyEvent{Key: k, Mod: mod}
}

func (p *Parser) dispatchTilde(params string, out chan<- Event) {
	key := params
	mod := ModNone
	if i := strings.IndexByte(params, ';'); i >= 0 {
		key = params[:i]
		if code, err := strconv.Atoi(params[i+1:]); err == nil {
			mod = decodeXtermMod(code)
		}
	}

	switch key {
	case "200":
		out <- Event{Kind: EventPasteStart}
		return
	case "201":
		out <- Event{Kind: EventPasteEnd}
		return
	}

	var k Key
	switch key {
	case "1":
		k = KeyHome
	case "2":
		k = KeyInsert
	case "3":
		k = KeyDelete
	case "4":
		k = KeyEnd
	case "5":
		k = KeyPgUp
	case "6":
		k = KeyPgDown
	case "15":
		k = KeyF5
	case "17":
		k = KeyF6
	case "18":
		k = KeyF7
	case "19":
		k = KeyF8
	case "20":
		k = KeyF9
	case "21":
		k = KeyF10
	case "23":
		k = KeyF11
	case "24":
		k = KeyF12
	default:
		return
	}
	emitKey(out, KeyEvent{Key: k, Mod: mod})
}

func (p *Parser) dispatchSGRMouse(rest string, final byte, out chan<- Event) {
	parts := strings.Split(rest, ";")
	if len(parts) != 3 {
		return
	}
	code, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return
	}
	button, action, mod := decodeSGRButton(code, final)
	out <- Event{Kind: EventMouse, Mouse: MouseEvent{Button: button, Action: action, X: x - 1, Y: y - 1, Mod: mod}}
}

// parseSS3 has just consumed ESC O; SS3 sequences are exactly one
// more byte (application-cursor-keys arrows and F1-F4).
func (p *Parser) parseSS3(raw <-chan byte, out chan<- Event) {
	b, ok := readByteTimeout(raw, seqTimeout)
	if !ok {
		return
	}
	switch b {
	case 'A':
		emitKey(out, KeyEvent{Key: KeyArrowUp})
	case 'B':
		emitKey(out, KeyEvent{Key: KeyArrowDown})
	case 'C':
		emitKey(out, KeyEvent{Key: KeyArrowRight})
	case 'D':
		emitKey(out, KeyEvent{Key: KeyArrowLeft})
	case 'P':
		emitKey(out, KeyEvent{Key: KeyF1})
	case 'Q':
		emitKey(out, KeyEvent{Key: KeyF2})
	case 'R':
		emitKey(out, KeyEvent{Key: KeyF3})
	case 'S':
		emitKey(out, KeyEvent{Key: KeyF4})
	case 'H':
		emitKey(out, KeyEvent{Key: KeyHome})
	case 'F':
		emitKey(out, KeyEvent{Key: KeyEnd})
	}
}

// parseOSC has just consumed ESC ]; it reads until BEL or ST (ESC \)
// and, if the payload is an OSC 10/11 reply, emits a ColorReport.
func (p *Parser) parseOSC(raw <-chan byte, out chan<- Event) {
	var payload []byte
	for {
		b, ok := readByteTimeout(raw, seqTimeout)
		if !ok {
			return
		}
		if b == 0x07 {
			break
		}
		if b == 0x1b {
			next, ok := readByteTimeout(raw, seqTimeout)
			if !ok || next == '\\' {
				break
			}
			payload = append(payload, b, next)
			continue
		}
		payload = append(payload, b)
	}

	s := string(payload)
	switch {
	case strings.HasPrefix(s, "10;"):
		out <- Event{Kind: EventColorReport, Color: ColorReport{Which: 10, Spec: s[3:]}}
	case strings.HasPrefix(s, "11;"):
		out <- Event{Kind: EventColorReport, Color: ColorReport{Which: 11, Spec: s[3:]}}
	}
}

// parseDCS has just consumed ESC P; no DCS semantics are specified so
// the sequence is read to its ST terminator and discarded.
func (p *Parser) parseDCS(raw <-chan byte) {
	for {
		b, ok := readByteTimeout(raw, seqTimeout)
		if !ok {
			return
		}
		if b == 0x1b {
			next, ok := readByteTimeout(raw, seqTimeout)
			if !ok || next == '\\' {
				return
			}
		}
	}
}
