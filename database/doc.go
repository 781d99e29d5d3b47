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

// Package database is a very simple database file system. It is currently
// only used by the regression package and so is tailored to the needs of
// that package. It is however, sufficiently general that it can be used for
// other packages if required.
//
// Access to a database is handled through a session. A session is started
// with the StartSession() function and concluded with the EndSession()
// function of the Session type. The activity argument to StartSession()
// declares the broad intention of the session. Writes back to the database
// file only ever happen on EndSession() and only when the session is not a
// read only session.
//
// Entries in a database are instances of types that satisfy the Entry
// interface. The database needs to know what entry types it may encounter
// when reading the database file, so entry types are declared with the
// RegisterEntryType() function, most conveniently from the init function
// given to StartSession(). Attempting to read a database containing an entry
// type that has not been registered is an error.
//
//	db, err := database.StartSession(dbPath, database.ActivityReading, initSession)
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(false)
//
// Individual entries are stored as a single line of comma separated fields.
// The first two fields, the key and the entry type ID, are under the control
// of this package. The remaining fields are the serialised entry, as
// returned by the entry's Serialise() function.
package database
