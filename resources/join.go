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

package resources

import (
	"os"
	"path/filepath"
)

// the preferred base directory. used only if it is present in the current
// working directory.
const baseResourceDir = ".gophervga"

// the directory used under the user's config directory.
const configResourceDir = "gophervga"

// JoinPath prepends the supplied path with the appropriate base path. The
// base path depends on the environment, as described in the package
// documentation.
//
// The function creates all folders necessary to reach the end of the
// sub-path. It does not otherwise touch or create files.
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(b, filepath.Join(path...))

	// if the path already exists then there is nothing more to do
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func basePath() (string, error) {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourceDir), nil
}
