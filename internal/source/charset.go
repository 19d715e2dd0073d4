package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// CanonicalEncoding resolves a WHATWG encoding label such as "latin1" or
// "windows-1252" to its canonical name. Empty means utf-8.
func CanonicalEncoding(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "utf-8", nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return name, nil
}

// decoder returns r unchanged for UTF-8 so that invalid sequences still
// surface as scan errors. Other charsets are transcoded to UTF-8.
func decoder(r io.Reader, label string) (io.Reader, error) {
	name, err := CanonicalEncoding(label)
	if err != nil {
		return nil, err
	}
	if name == "utf-8" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
