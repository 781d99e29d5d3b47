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
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gophervga/resources"
)

// uniqueFilename returns a filename in the regression script directory that
// is unique to the moment the function was called. The name of the original
// script is used for the name component.
func uniqueFilename(script string) (string, error) {
	p, err := resources.JoinPath(regressionPath, regressionScripts)
	if err != nil {
		return "", err
	}

	shortName := strings.TrimSuffix(filepath.Base(script), filepath.Ext(script))

	return filepath.Join(p, resources.UniqueFilename("text", shortName)), nil
}
