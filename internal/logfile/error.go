package logfile

import "fmt"

// ErrNoFile reports that a directory holds no processable log file.
// It marks a normal terminate-early condition, not a failure.
type ErrNoFile struct {
	dir string
}

func NewErrNoFile(dir string) ErrNoFile {
	return ErrNoFile{
		dir: dir,
	}
}

func (e ErrNoFile) Error() string {
	return fmt.Sprintf("no log file found in %q", e.dir)
}
