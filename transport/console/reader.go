package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Reader reads player moves line by line. Lines have no length limit.
type Reader struct {
	reader *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadLine - returns the next line without its line ending, or io.EOF when the input is exhausted.
// A last line without a trailing newline is still returned.
func (that *Reader) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", io.EOF
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
