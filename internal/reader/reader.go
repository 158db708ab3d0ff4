package reader

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/nlatools/nla/internal/logfile"
)

const maxLineSize = 1024 * 1024

// Source yields the lines of one log file lazily, in a single forward
// pass. Decompression is transparent: callers see decoded text lines
// whether the file is plain or gzipped.
type Source struct {
	file *os.File
	gz   *gzip.Reader
	scan *bufio.Scanner
}

// Open prepares a Source for the given file. The caller owns the
// returned Source and must Close it.
func Open(f logfile.File) (*Source, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", f.Path, err)
	}

	var in io.Reader = file

	var gz *gzip.Reader

	if f.Gzipped {
		gz, err = gzip.NewReader(file)
		if err != nil {
			file.Close()

			return nil, fmt.Errorf("open gzip stream %q: %w", f.Path, err)
		}

		in = gz
	}

	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &Source{
		file: file,
		gz:   gz,
		scan: scan,
	}, nil
}

// Scan advances to the next line, returning false at end of stream or
// on a read error. Err distinguishes the two.
func (s *Source) Scan() bool {
	return s.scan.Scan()
}

// Line returns the current line without its trailing newline.
func (s *Source) Line() string {
	return s.scan.Text()
}

// Err reports a mid-stream read or decompression failure, nil on a
// clean end of stream.
func (s *Source) Err() error {
	if err := s.scan.Err(); err != nil {
		return fmt.Errorf("read log stream %q: %w", s.file.Name(), err)
	}

	return nil
}

func (s *Source) Close() error {
	if s.gz != nil {
		if err := s.gz.Close(); err != nil {
			s.file.Close()

			return fmt.Errorf("close gzip stream %q: %w", s.file.Name(), err)
		}
	}

	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close log file %q: %w", s.file.Name(), err)
	}

	return nil
}
