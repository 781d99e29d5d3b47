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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// ansi attribute.
const (
	attrBold      = 1
	attrItalic    = 3
	attrUnderline = 4
	attrInverse   = 7
	attrStrike    = 9
)

// Pens is the table of colors to be used for text.
var Pens map[string]string

// DimPens is the table of pastel colors to be used for text.
var DimPens map[string]string

// PenStyles is the table of styles to be used for text.
var PenStyles map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	var err error

	Pens = make(map[string]string)
	DimPens = make(map[string]string)
	PenStyles = make(map[string]string)

	NormalPen, err = ColorBuild("", "", "", false, false)
	if err != nil {
		fmt.Println(err)
	}

	for _, col := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[col], err = ColorBuild(col, "normal", "", true, false)
		if err != nil {
			fmt.Println(err)
		}
		DimPens[col], err = ColorBuild(col, "normal", "", false, false)
		if err != nil {
			fmt.Println(err)
		}
	}

	PenStyles["bold"], err = ColorBuild("", "", "bold", false, false)
	if err != nil {
		fmt.Println(err)
	}
	PenStyles["underline"], err = ColorBuild("", "", "underline", false, false)
	if err != nil {
		fmt.Println(err)
	}
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	s := strings.Builder{}
	s.Grow(32)
	s.WriteString("\033[")

	// pen
	if pen != "" {
		penType := targetPen
		if brightPen {
			penType = targetBrightPen
		}
		switch strings.ToUpper(pen) {
		case "BLACK":
			s.WriteString(fmt.Sprintf("%d%d", penType, colBlack))
		case "RED":
			s.WriteString(fmt.Sprintf("%d%d", penType, colRed))
		case "GREEN":
			s.WriteString(fmt.Sprintf("%d%d", penType, colGreen))
		case "YELLOW":
			s.WriteString(fmt.Sprintf("%d%d", penType, colYellow))
		case "BLUE":
			s.WriteString(fmt.Sprintf("%d%d", penType, colBlue))
		case "MAGENTA":
			s.WriteString(fmt.Sprintf("%d%d", penType, colMagenta))
		case "CYAN":
			s.WriteString(fmt.Sprintf("%d%d", penType, colCyan))
		case "WHITE":
			s.WriteString(fmt.Sprintf("%d%d", penType, colWhite))
		case "NORMAL":
			s.WriteString(fmt.Sprintf("%d%d", penType, colDefault))
		case "":
		default:
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
	}

	// paper
	if paper != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		paperType := targetPaper
		if brightPaper {
			paperType = targetBrightPaper
		}
		switch strings.ToUpper(paper) {
		case "BLACK":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colBlack))
		case "RED":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colRed))
		case "GREEN":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colGreen))
		case "YELLOW":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colYellow))
		case "BLUE":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colBlue))
		case "MAGENTA":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colMagenta))
		case "CYAN":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colCyan))
		case "WHITE":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colWhite))
		case "NORMAL":
			s.WriteString(fmt.Sprintf("%d%d", paperType, colDefault))
		case "":
		default:
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
	}

	// attribute
	if attribute != "" {
		if s.Len() > 2 {
			s.WriteString(";")
		}
		switch strings.ToUpper(attribute) {
		case "BOLD":
			s.WriteString(fmt.Sprintf("%d", attrBold))
		case "ITALIC":
			s.WriteString(fmt.Sprintf("%d", attrItalic))
		case "UNDERLINE":
			s.WriteString(fmt.Sprintf("%d", attrUnderline))
		case "INVERSE":
			s.WriteString(fmt.Sprintf("%d", attrInverse))
		case "STRIKE":
			s.WriteString(fmt.Sprintf("%d", attrStrike))
		case "NORMAL":
		case "":
		default:
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
	}

	// terminate ANSI sequence
	s.WriteString("m")

	return s.String(), nil
}

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// CursorHome is the CSI sequence to move the cursor to the top-left corner of
// the screen.
const CursorHome = "\033[H"

// CursorHide is the CSI sequence to make the cursor invisible.
const CursorHide = "\033[?25l"

// CursorShow is the CSI sequence to make the cursor visible again after a
// CursorHide.
const CursorShow = "\033[?25h"
