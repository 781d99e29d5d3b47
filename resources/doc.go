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

// Package resources contains functions to prepare paths for GopherVGA
// resources.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// The base of the path returned by JoinPath() depends on the environment. If
// the base resource directory, .gophervga, is present in the current working
// directory then that is used. This is convenient during development. In all
// other instances the user's config directory is used, as reported by
// os.UserConfigDir(). On a modern Linux system that means something like:
//
//	/home/user/.config/gophervga/
package resources
