// This file is part of GopherVGA.
//
// GopherVGA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherVGA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherVGA.  If not, see <https://www.gnu.org/licenses/>.

package vga

// DefaultAttr is the attribute a new Writer starts with.
var DefaultAttr = NewAttr(Yellow, Black)

// Writer interprets a byte stream and types it onto the bottom row of a
// Surface, scrolling the surface as lines fill up. The Writer assumes it has
// its Surface to itself; when several goroutines want to write, share the
// Writer through a Console.
type Writer struct {
	surface *Surface

	// the cursor column on the bottom row. the value runs from zero to Cols
	// inclusive: a value of Cols means the row is full and the next visible
	// byte will start a new line
	col int

	// the attribute given to every cell the Writer pokes
	attr Attr
}

// NewWriter is the preferred method of initialisation for the Writer type.
// The Writer takes ownership of the surface.
func NewWriter(surface *Surface) *Writer {
	return &Writer{
		surface: surface,
		attr:    DefaultAttr,
	}
}

// Surface returns the surface the Writer is typing onto.
func (wrt *Writer) Surface() *Surface {
	return wrt.surface
}

// WriteByte writes a single byte at the cursor. The newline byte starts a
// new line and displays nothing. Every other byte is displayed exactly as
// given, sanitisation of unprintable bytes is the business of Write() and
// WriteString(). The returned error is always nil, the signature exists to
// satisfy io.ByteWriter.
func (wrt *Writer) WriteByte(b byte) error {
	if b == '\n' {
		wrt.lineAdvance()
		return nil
	}

	if wrt.col == Cols {
		wrt.lineAdvance()
	}

	wrt.surface.Poke(Rows-1, wrt.col, Cell{Char: b, Attr: wrt.attr})
	wrt.col++

	return nil
}

// Write implements the io.Writer interface. Bytes the text mode character
// set can show (0x20 to 0x7e) and the newline byte are forwarded unchanged.
// Every other byte is displayed as the substitution character. The returned
// error is always nil and the returned length is always len(p).
func (wrt *Writer) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' || (b >= 0x20 && b <= 0x7e) {
			_ = wrt.WriteByte(b)
		} else {
			_ = wrt.WriteByte(SubstituteChar)
		}
	}
	return len(p), nil
}

// WriteString writes a string through Write(), satisfying io.StringWriter.
func (wrt *Writer) WriteString(s string) (int, error) {
	return wrt.Write([]byte(s))
}

// SetAttr changes the attribute used for subsequent writes. Cells already on
// the surface keep the attribute they were written with.
func (wrt *Writer) SetAttr(attr Attr) {
	wrt.attr = attr
}

// Attr returns the attribute currently being given to written cells.
func (wrt *Writer) Attr() Attr {
	return wrt.attr
}

// Col returns the cursor column on the bottom row.
func (wrt *Writer) Col() int {
	return wrt.col
}

// Clear blanks the whole surface with the active attribute and returns the
// cursor to the first column.
func (wrt *Writer) Clear() {
	for row := 0; row < Rows; row++ {
		wrt.clearRow(row)
	}
	wrt.col = 0
}

// lineAdvance moves every row of the surface up by one, losing the top row,
// blanking the bottom row and returning the cursor to the first column.
func (wrt *Writer) lineAdvance() {
	for row := 1; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			wrt.surface.Poke(row-1, col, wrt.surface.Peek(row, col))
		}
	}
	wrt.clearRow(Rows - 1)
	wrt.col = 0
}

func (wrt *Writer) clearRow(row int) {
	blank := Cell{Char: ClearChar, Attr: wrt.attr}
	for col := 0; col < Cols; col++ {
		wrt.surface.Poke(row, col, blank)
	}
}
