package extract

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by Scan when a line is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Open opens path for reading. The caller owns the returned file and must
// close it once scanning completes or fails.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(OpenFailed, path, err)
	}
	return f, nil
}

// Stat returns the size of path in bytes.
func Stat(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, wrap(MetadataFailed, path, err)
	}
	return fi.Size(), nil
}

// Scan reads r line by line and collects every match of Pattern in scan
// order: line 0 first, left to right within each line. Duplicates are kept.
// Lines have no length limit. A trailing "\r" is stripped from each line.
func Scan(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	matches := make([]string, 0, 16)
	for {
		line, readErr := br.ReadBytes('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, wrap(ScanFailed, "", readErr)
		}
		if len(line) == 0 && readErr == io.EOF {
			break
		}
		line = trimEOL(line)
		if !utf8.Valid(line) {
			return nil, wrap(ScanFailed, "", ErrInvalidUTF8)
		}
		matches = append(matches, MatchLine(string(line))...)
		if readErr == io.EOF {
			break
		}
	}
	return matches, nil
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}

// Write replaces the contents of path with entries joined by "\n". No
// trailing newline is added; zero entries produce an empty file.
func Write(path string, entries []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(entries, "\n")), 0o644); err != nil {
		return wrap(WriteFailed, path, err)
	}
	return nil
}
