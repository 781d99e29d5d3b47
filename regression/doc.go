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

// Package regression facilitates the regression testing of the console. It
// complements the unit testing of the individual packages by fingerprinting
// the display that results from feeding a real body of text, a script,
// through a complete console.
//
// Tests are stored in the regression database, itself kept in the resources
// directory (see the resources package). When a test is added the script is
// copied to the script directory and the fingerprint of the display is
// recorded. On subsequent runs the script is fed through a fresh console and
// the new fingerprint compared with the recorded one.
//
// The RegressList(), RegressAdd(), RegressDelete() and RegressRun()
// functions operate on the database as a whole and are intended to be called
// from main().
//
// The only test type currently implemented is TextRegression. Further types
// need only satisfy the Regressor interface and register themselves in
// initDBSession().
package regression
