package extract

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure by the step that produced it.
type Kind int

const (
	KindUnknown Kind = iota
	UsageError
	OpenFailed
	MetadataFailed
	ScanFailed
	WriteFailed
)

func (k Kind) String() string {
	switch k {
	case UsageError:
		return "usage_error"
	case OpenFailed:
		return "open_failed"
	case MetadataFailed:
		return "metadata_failed"
	case ScanFailed:
		return "scan_failed"
	case WriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// Error carries the failing step and the underlying OS or decode error.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "extract error"
	}
	var prefix string
	switch e.Kind {
	case UsageError:
		prefix = "Invalid usage"
	case OpenFailed:
		prefix = "Failed to open file"
	case MetadataFailed:
		prefix = "Failed to process file metadata"
	case ScanFailed:
		prefix = "Failed to process file contents"
	case WriteFailed:
		prefix = "Error writing to file"
	default:
		prefix = "Extraction failed"
	}
	if e.Err == nil {
		return prefix
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func wrap(kind Kind, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Path: path, Err: err}
}
