// Package source turns an opened input file into the line-oriented text
// stream that extract.Scan consumes. Plain text passes through untouched;
// HTML and mbox inputs are flattened to text first.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format names how the input bytes are interpreted.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatMbox Format = "mbox"
	// FormatAuto picks a concrete format from the file extension.
	FormatAuto Format = "auto"
)

// ParseFormat validates a user-supplied format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatHTML, FormatMbox, FormatAuto:
		return f, nil
	default:
		return "", fmt.Errorf("unknown input format %q (want text, html, mbox or auto)", s)
	}
}

// Detect maps a path to a concrete format by extension.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".mbox", ".mbx":
		return FormatMbox
	default:
		return FormatText
	}
}

// Options controls how NewReader interprets the input.
type Options struct {
	Format   Format
	Encoding string
	// Path is consulted only when Format is FormatAuto.
	Path string
}

// Resolve returns the concrete format for o.
func (o Options) Resolve() Format {
	switch o.Format {
	case FormatAuto:
		return Detect(o.Path)
	case "":
		return FormatText
	default:
		return o.Format
	}
}

// NewReader wraps r so that it yields UTF-8 text lines. HTML and mbox
// inputs are read fully and flattened before NewReader returns.
func NewReader(r io.Reader, o Options) (io.Reader, error) {
	dec, err := decoder(r, o.Encoding)
	if err != nil {
		return nil, err
	}
	switch f := o.Resolve(); f {
	case FormatText:
		return dec, nil
	case FormatHTML:
		return htmlText(dec)
	case FormatMbox:
		return mboxText(dec)
	default:
		return nil, fmt.Errorf("unsupported input format %q", f)
	}
}
