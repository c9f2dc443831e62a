package text

import (
	"fmt"
	"strings"
)

// Positioner represents a thing that knows its position in a text file or stream,
// typically an error.
type Positioner interface {
	Position() Position
}

// Position holds a source position in a text file or stream.
type Position struct {
	Filename     string // filename, if any
	Offset       int    // byte offset, starting at 0. It's set to -1 if not provided.
	LineNumber   int    // line number, starting at 1
	ColumnNumber int    // column number, starting at 1 (character count per line)
}

// IsValid returns true if line number is > 0.
func (pos Position) IsValid() bool {
	return pos.LineNumber > 0
}

func (pos Position) String() string {
	if pos.Filename == "" {
		pos.Filename = "<stream>"
	}
	return positionStringFormatfunc(pos)
}

func positionStringFormatfunc(p Position) string {
	if !p.IsValid() {
		return p.Filename
	}
	if p.ColumnNumber > 0 {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.LineNumber, p.ColumnNumber)
	}
	return fmt.Sprintf("%s:%d", p.Filename, p.LineNumber)
}

// PositionFromOffset computes the line and column of the byte offset in src.
// Offsets outside src yield a Position with only Offset set.
func PositionFromOffset(src []byte, offset int) Position {
	pos := Position{Offset: offset}
	if offset < 0 || offset > len(src) {
		return pos
	}
	before := string(src[:offset])
	pos.LineNumber = strings.Count(before, "\n") + 1
	pos.ColumnNumber = offset - strings.LastIndex(before, "\n")
	return pos
}
