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

package regression

import (
	"crypto/sha1"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/database"
	"github.com/jetsetilly/gophervga/digest"
	"github.com/jetsetilly/gophervga/terminal/plainterm"
	"github.com/jetsetilly/gophervga/vga"
)

const textEntryID = "text"

const (
	textFieldScript int = iota
	textFieldMode
	textFieldDigest
	textFieldNotes
	numTextFields
)

// TextRegression feeds a script of text through a fresh console and compares
// a fingerprint of the resulting display against the fingerprint recorded
// when the entry was added.
type TextRegression struct {
	key int

	// path to the script that is fed through the console. the script is
	// copied into the regression script directory when the entry is added
	Script string

	// what part of the console output is fingerprinted
	Mode Mode

	Notes string

	// the fingerprint of the display
	digest string
}

func deserialiseTextEntry(fields database.SerialisedEntry) (database.Entry, error) {
	reg := &TextRegression{}

	// basic sanity check
	if len(fields) > numTextFields {
		return nil, curated.Errorf("text: %v", "too many fields")
	}
	if len(fields) < numTextFields {
		return nil, curated.Errorf("text: %v", "too few fields")
	}

	var err error

	reg.Script = fields[textFieldScript]
	reg.Mode, err = ParseMode(fields[textFieldMode])
	if err != nil {
		return nil, curated.Errorf("text: %v", err)
	}
	reg.digest = fields[textFieldDigest]
	reg.Notes = fields[textFieldNotes]

	return reg, nil
}

// ID implements the database.Entry interface.
func (reg TextRegression) ID() string {
	return textEntryID
}

// String implements the database.Entry interface.
func (reg TextRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s/%s] %s", reg.ID(), reg.Mode, filepath.Base(reg.Script)))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *TextRegression) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
			reg.Script,
			reg.Mode.String(),
			reg.digest,
			reg.Notes,
		},
		nil
}

// CleanUp implements the database.Entry interface. The copy of the script in
// the regression script directory is owned by the entry and is removed.
func (reg TextRegression) CleanUp() error {
	err := os.Remove(reg.Script)
	if _, ok := err.(*os.PathError); ok {
		return nil
	}
	return err
}

// SetKey implements the database.Entry interface.
func (reg *TextRegression) SetKey(key int) {
	reg.key = key
}

// Key implements the database.Entry interface.
func (reg TextRegression) Key() int {
	return reg.key
}

// regress implements the Regressor interface.
func (reg *TextRegression) regress(newRegression bool, output io.Writer, msg string) (bool, error) {
	output.Write([]byte(msg))

	script, err := os.ReadFile(reg.Script)
	if err != nil {
		return false, curated.Errorf("text: %v", err)
	}

	console := vga.NewConsole(vga.NewWriter(vga.NewSurface()))
	console.Clear()

	dig := digest.NewGrid()
	console.AddRenderer(dig)

	// the script is written in one call so that the fingerprint does not
	// depend on how the script happens to be chunked
	if _, err := console.Write(script); err != nil {
		return false, curated.Errorf("text: %v", err)
	}

	var hash string

	switch reg.Mode {
	case ModeCells:
		hash = dig.Hash()

	case ModeRender:
		render := &strings.Builder{}
		console.BorrowSurface(func(srf *vga.Surface) {
			err = plainterm.Render(render, srf)
		})
		if err != nil {
			return false, curated.Errorf("text: %v", err)
		}
		hash = fmt.Sprintf("%x", sha1.Sum([]byte(render.String())))

	default:
		return false, curated.Errorf("text: %v", "undefined fingerprint mode")
	}

	if err := console.End(); err != nil {
		return false, curated.Errorf("text: %v", err)
	}

	if newRegression {
		reg.digest = hash

		// store a copy of the script in the regression script directory
		newScript, err := uniqueFilename(reg.Script)
		if err != nil {
			return false, curated.Errorf("text: %v", err)
		}

		// check that the filename is unique
		if _, err := os.Stat(newScript); err == nil {
			return false, curated.Errorf("text: script already exists (%s)", newScript)
		}

		if err := os.WriteFile(newScript, script, 0600); err != nil {
			return false, curated.Errorf("text: error copying script: %v", err)
		}

		// update the script path now that the entry owns the copy
		reg.Script = newScript
	}

	return hash == reg.digest, nil
}
