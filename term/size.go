package term

import (
	"os"

	"golang.org/x/term"
)

// Size returns f's current terminal width and height in cells.
func Size(f *os.File) (width, height int, err error) {
	return term.GetSize(int(f.Fd()))
}
