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

package database_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gophervga/database"
	"github.com/jetsetilly/gophervga/test"
)

const testEntryID = "test"

type testEntry struct {
	key     int
	value   string
	cleaned bool
}

func deserialiseTestEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("wrong number of fields")
	}
	return &testEntry{value: fields[0]}, nil
}

func (ent testEntry) ID() string {
	return testEntryID
}

func (ent testEntry) String() string {
	return ent.value
}

func (ent *testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.value}, nil
}

func (ent *testEntry) CleanUp() error {
	ent.cleaned = true
	return nil
}

func (ent *testEntry) SetKey(key int) {
	ent.key = key
}

func (ent testEntry) Key() int {
	return ent.key
}

func initTestSession(db *database.Session) error {
	return db.RegisterEntryType(testEntryID, deserialiseTestEntry)
}

func TestSession(t *testing.T) {
	p := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(p, database.ActivityCreating, initTestSession)
	if !test.ExpectedSuccess(t, err) {
		return
	}

	test.ExpectedSuccess(t, db.Add(&testEntry{value: "foo"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{value: "bar"}))
	test.Equate(t, db.NumEntries(), 2)

	test.ExpectedSuccess(t, db.EndSession(true))

	// read the entries back in a fresh session
	db, err = database.StartSession(p, database.ActivityReading, initTestSession)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	defer db.EndSession(false)

	test.Equate(t, db.NumEntries(), 2)

	ent, err := db.Get(1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent.String(), "bar")
	test.Equate(t, ent.Key(), 1)

	s := &strings.Builder{}
	test.ExpectedSuccess(t, db.List(s))
	test.Equate(t, s.String(), "000 foo\n001 bar\nTotal: 2\n")
}

func TestReadOnlySession(t *testing.T) {
	p := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(p, database.ActivityCreating, initTestSession)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	test.ExpectedSuccess(t, db.EndSession(true))

	// read only sessions cannot commit
	db, err = database.StartSession(p, database.ActivityReading, initTestSession)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	test.ExpectedFailure(t, db.EndSession(true))
	test.ExpectedSuccess(t, db.EndSession(false))
}

func TestDelete(t *testing.T) {
	p := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(p, database.ActivityCreating, initTestSession)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	defer db.EndSession(true)

	ent := &testEntry{value: "foo"}
	test.ExpectedSuccess(t, db.Add(ent))
	test.ExpectedSuccess(t, db.Add(&testEntry{value: "bar"}))

	test.ExpectedSuccess(t, db.Delete(0))
	test.Equate(t, ent.cleaned, true)
	test.Equate(t, db.NumEntries(), 1)

	// the deleted key is no longer available
	_, err = db.Get(0)
	test.ExpectedFailure(t, err)

	// but is reused by the next Add()
	test.ExpectedSuccess(t, db.Add(&testEntry{value: "baz"}))
	ent2, err := db.Get(0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ent2.String(), "baz")
}

func TestSelect(t *testing.T) {
	p := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(p, database.ActivityCreating, initTestSession)
	if !test.ExpectedSuccess(t, err) {
		return
	}
	defer db.EndSession(false)

	test.ExpectedSuccess(t, db.Add(&testEntry{value: "foo"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{value: "bar"}))
	test.ExpectedSuccess(t, db.Add(&testEntry{value: "baz"}))

	// all entries in key order
	visited := []string{}
	last, err := db.SelectAll(func(ent database.Entry) error {
		visited = append(visited, ent.String())
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Join(visited, " "), "foo bar baz")
	test.Equate(t, last.String(), "baz")

	// specific keys in the order given
	visited = visited[:0]
	_, err = db.SelectKeys(func(ent database.Entry) error {
		visited = append(visited, ent.String())
		return nil
	}, 2, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Join(visited, " "), "baz foo")

	// missing keys are an error
	_, err = db.SelectKeys(nil, 99)
	test.ExpectedFailure(t, err)
}

func TestBadDatabase(t *testing.T) {
	d := t.TempDir()

	// unregistered entry type
	p := filepath.Join(d, "unrecognised")
	if err := os.WriteFile(p, []byte("000,savestate,foo\n"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err := database.StartSession(p, database.ActivityReading, initTestSession)
	test.ExpectedFailure(t, err)

	// invalid key
	p = filepath.Join(d, "badkey")
	if err := os.WriteFile(p, []byte("abc,test,foo\n"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err = database.StartSession(p, database.ActivityReading, initTestSession)
	test.ExpectedFailure(t, err)

	// duplicate key
	p = filepath.Join(d, "duplicate")
	if err := os.WriteFile(p, []byte("000,test,foo\n000,test,bar\n"), 0600); err != nil {
		t.Fatal(err)
	}
	_, err = database.StartSession(p, database.ActivityReading, initTestSession)
	test.ExpectedFailure(t, err)
}
