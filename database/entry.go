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

package database

import "github.com/jetsetilly/gophervga/curated"

// SerialisedEntry is the Entry data represented as a list of strings. The
// strings must not contain the database field separator.
type SerialisedEntry []string

// deserialiser creates an entry of the registered type from the serialised
// fields read from the database file. the session assigns the key with the
// entry's SetKey() function after successful deserialisation.
type deserialiser func(fields SerialisedEntry) (Entry, error)

// Entry represents the generic entry in the database.
type Entry interface {
	// ID identifies the entry type in the database file
	ID() string

	// String returns a human readable representation of the entry. the
	// machine readable representation is returned by Serialise()
	String() string

	// Serialise returns the entry as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)

	// CleanUp is called when the entry is deleted from the database. used
	// to remove any files the entry owns
	CleanUp() error

	// SetKey is called when the entry is assigned a database key
	SetKey(key int)

	// Key returns the key previously assigned with SetKey()
	Key() int
}

// RegisterEntryType tells the database what entries it may expect in the
// database file and how to deserialise them.
func (db *Session) RegisterEntryType(id string, des deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf("database: entry type already registered (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
