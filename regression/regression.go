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
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/jetsetilly/gophervga/curated"
	"github.com/jetsetilly/gophervga/database"
	"github.com/jetsetilly/gophervga/resources"
	"github.com/jetsetilly/gophervga/terminal/ansi"
)

// the location of the regression database and the scripts it refers to,
// relative to the resource path.
const regressionPath = "regression"
const regressionDB = "db"
const regressionScripts = "scripts"

// Regressor is the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the
	// newRegression flag causes the test to record a new fingerprint
	// rather than compare against a previous one.
	//
	// message is the string to print while the test is running. it is
	// printed without a trailing newline so that it can be overwritten
	// when the test has completed.
	regress(newRegression bool, output io.Writer, message string) (bool, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	if err := db.RegisterEntryType(textEntryID, deserialiseTextEntry); err != nil {
		return err
	}

	// the script directory is not created by JoinPath() because it is the
	// final element of the path
	p, err := resources.JoinPath(regressionPath, regressionScripts)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	if err := os.MkdirAll(p, 0700); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	return nil
}

// dbPath returns the path to the regression database, creating intervening
// directories as required.
func dbPath() (string, error) {
	p, err := resources.JoinPath(regressionPath, regressionDB)
	if err != nil {
		return "", curated.Errorf("regression: %v", err)
	}
	return p, nil
}

// RegressList displays every entry in the regression database.
func RegressList(output io.Writer) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression test to the database. The test is run
// once, to record the fingerprint that future runs will be compared
// against.
func RegressAdd(output io.Writer, reg Regressor) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	msg := fmt.Sprintf("adding: %s", reg)
	_, err = reg.regress(true, output, msg)
	if err != nil {
		return err
	}

	output.Write([]byte(ansi.ClearLine))
	output.Write([]byte(fmt.Sprintf("\radded: %s\n", reg)))

	return db.Add(reg)
}

// RegressDelete removes an entry from the regression database.
//
// Deletion requires confirmation, which is read from the confirmation
// io.Reader. Any input beginning with y or Y is treated as a yes.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(true)

	ent, err := db.Get(v)
	if err != nil {
		return err
	}

	output.Write([]byte(fmt.Sprintf("%s\ndelete? (y/n): ", ent)))

	confirm := make([]byte, 32)
	_, err = confirmation.Read(confirm)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		err = db.Delete(v)
		if err != nil {
			return err
		}
		output.Write([]byte(fmt.Sprintf("deleted test #%s from regression database\n", key)))
	}

	return nil
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to run. An empty list means every entry.
func RegressRun(output io.Writer, verbose bool, filterKeys []string) error {
	if output == nil {
		return curated.Errorf("regression: %v", "io.Writer should not be nil")
	}

	p, err := dbPath()
	if err != nil {
		return err
	}

	db, err := database.StartSession(p, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for i := range filterKeys {
		v, err := strconv.Atoi(filterKeys[i])
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", filterKeys[i])
		}
		keys = append(keys, v)
	}
	sort.Ints(keys)

	numSucceed := 0
	numFail := 0
	numError := 0

	defer func() {
		output.Write([]byte(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail)))
		if numError > 0 {
			output.Write([]byte(" [with errors]"))
		}
		output.Write([]byte("\n"))
	}()

	onSelect := func(ent database.Entry) error {
		// database entry should also satisfy the Regressor interface
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: %v", "database entry does not satisfy the Regressor interface")
		}

		msg := fmt.Sprintf("running: %s", reg)
		ok, err := reg.regress(false, output, msg)

		// once the regression has completed, clear the line in readiness
		// for the completion message
		output.Write([]byte(ansi.ClearLine))

		if err != nil {
			numError++
			output.Write([]byte(fmt.Sprintf("\r ERROR: %s\n", reg)))
			if verbose {
				output.Write([]byte(fmt.Sprintf("%s\n", err)))
			}
		} else if !ok {
			numFail++
			output.Write([]byte(fmt.Sprintf("\rfailure: %s\n", reg)))
		} else {
			numSucceed++
			output.Write([]byte(fmt.Sprintf("\rsucceed: %s\n", reg)))
		}

		return nil
	}

	_, err = db.SelectKeys(onSelect, keys...)
	return err
}
