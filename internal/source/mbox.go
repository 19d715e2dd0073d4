package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/emersion/go-mbox"
)

// mboxText concatenates every message of an mbox stream, headers and body,
// in mailbox order. The "From " separator lines are consumed by the reader.
func mboxText(r io.Reader) (io.Reader, error) {
	mr := mbox.NewReader(r)
	var buf bytes.Buffer
	for i := 0; ; i++ {
		msg, err := mr.NextMessage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read mbox message %d: %w", i, err)
		}
		if _, err := io.Copy(&buf, msg); err != nil {
			return nil, fmt.Errorf("read mbox message %d: %w", i, err)
		}
		if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
			buf.WriteByte('\n')
		}
	}
	return &buf, nil
}
