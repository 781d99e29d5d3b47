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

// SelectAll visits every entry in the database in key order. onSelect can be
// nil.
//
// Returns the last entry in the selection; or, in the case of an error, the
// last entry visited before the error.
func (db Session) SelectAll(onSelect func(Entry) error) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys visits the entries with the specified keys, in the order given.
// An empty list of keys means every key, in key order. onSelect can be nil.
//
// Returns the last entry in the selection; or, in the case of an error, the
// last entry visited before the error.
func (db Session) SelectKeys(onSelect func(Entry) error, keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ Entry) error { return nil }
	}

	keyList := keys
	if len(keyList) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			return entry, curated.Errorf("database: key not available (%03d)", key)
		}
		entry = ent

		if err := onSelect(entry); err != nil {
			return entry, err
		}
	}

	return entry, nil
}
