package logfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// DefaultPrefix is the filename stem the analyzer looks for, per the
// nginx ui_short log naming convention.
const DefaultPrefix = "nginx-access-ui.log"

const dateLayout = "20060102"

// File identifies the single input file selected for a run.
type File struct {
	Path    string
	Date    time.Time
	Gzipped bool
}

func NewFile(path string, date time.Time, gzipped bool) File {
	return File{
		Path:    path,
		Date:    date,
		Gzipped: gzipped,
	}
}

// Find scans the immediate entries of dir for names matching
// <prefix>-YYYYMMDD with an optional .gz suffix and returns the entry
// with the latest date. Entries that do not match, including ones
// whose digits are not a real calendar date, are ignored. When two
// entries share the latest date the lexicographically last name wins.
func Find(dir, prefix string) (File, error) {
	regex, err := regexp.Compile(`^` + regexp.QuoteMeta(prefix) + `-(\d{8})(\.gz)?$`)
	if err != nil {
		return File{}, fmt.Errorf("compile log name pattern: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, NewErrNoFile(dir)
	}

	if err != nil {
		return File{}, fmt.Errorf("read log dir %q: %w", dir, err)
	}

	var (
		found  bool
		latest File
	)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matches := regex.FindStringSubmatch(entry.Name())
		if matches == nil {
			continue
		}

		date, err := time.Parse(dateLayout, matches[1])
		if err != nil {
			continue
		}

		candidate := NewFile(filepath.Join(dir, entry.Name()), date, matches[2] == ".gz")
		if !found || candidate.Date.After(latest.Date) ||
			(candidate.Date.Equal(latest.Date) && candidate.Path > latest.Path) {
			latest = candidate
			found = true
		}
	}

	if !found {
		return File{}, NewErrNoFile(dir)
	}

	return latest, nil
}
