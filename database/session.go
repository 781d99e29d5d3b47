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

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophervga/curated"
)

// Activity is used to specify the general activity of the database session.
type Activity int

// Valid activities. ActivityCreating implies ActivityModifying, with the
// additional provision that the database file is created if it does not
// exist.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries map[int]Entry

	// functions to call when encountering an entry of the registered type
	// in the database file
	entryTypes map[string]deserialiser
}

// StartSession starts a new database session with the specified activity.
// The init function is called once the database file has been opened but
// before it is read. Entry type registration happens there. The init
// function can be nil.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{
		activity:   activity,
		entryTypes: make(map[string]deserialiser),
	}

	flags := os.O_RDONLY
	switch activity {
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	if init != nil {
		err = init(db)
		if err != nil {
			return nil, err
		}
	}

	err = db.read()
	if err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. If commit is true then any changes to the
// database are written back to the database file. Committing a read only
// session is an error.
func (db *Session) EndSession(commit bool) error {
	if commit {
		if db.activity == ActivityReading {
			return curated.Errorf("database: %v", "cannot commit to a read only session")
		}

		err := db.dbfile.Truncate(0)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		_, err = db.dbfile.Seek(0, io.SeekStart)
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		for _, key := range db.SortedKeyList() {
			ent := db.entries[key]

			ser, err := ent.Serialise()
			if err != nil {
				return curated.Errorf("database: %v", err)
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, ent.ID()))
			for i := 0; i < len(ser); i++ {
				s.WriteString(fieldSep)
				s.WriteString(ser[i])
			}
			s.WriteString(entrySep)

			_, err = db.dbfile.WriteString(s.String())
			if err != nil {
				return curated.Errorf("database: %v", err)
			}
		}
	}

	if db.dbfile != nil {
		err := db.dbfile.Close()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
		db.dbfile = nil
	}

	db.entries = nil
	db.entryTypes = nil

	return nil
}

// read the entire database file into the entries map. the file is read once
// at the start of the session. EndSession() writes back any changes.
func (db *Session) read() error {
	db.entries = make(map[int]Entry)

	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("database: %v", err)
	}

	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	lines := strings.Split(string(buffer), entrySep)

	for i := 0; i < len(lines); i++ {
		lines[i] = strings.TrimSpace(lines[i])
		if len(lines[i]) == 0 {
			continue
		}

		// the leader fields are under the control of this package. the
		// remainder of the line belongs to the entry itself
		fields := strings.SplitN(lines[i], fieldSep, numLeaderFields+1)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: corrupt entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%03d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s) at line %d", fields[leaderFieldID], i+1)
		}

		var ser SerialisedEntry
		if len(fields) > numLeaderFields {
			ser = strings.Split(fields[numLeaderFields], fieldSep)
		}

		ent, err := des(ser)
		if err != nil {
			return err
		}
		ent.SetKey(key)

		db.entries[key] = ent
	}

	return nil
}
