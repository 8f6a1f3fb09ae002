package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/h2non/filetype"
)

var ErrBinaryInput = errors.New("input looks like a binary file")

// sniffLen matches the header size filetype inspects.
const sniffLen = 262

// ReadInput reads all of r as text. Inputs whose header matches a known
// binary type (image, archive, media, document) are rejected. A single
// trailing newline (LF or CRLF) is dropped so piped input does not end with an
// empty line.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if kind, _ := filetype.Match(head); kind != filetype.Unknown {
		return "", fmt.Errorf("%w (%s)", ErrBinaryInput, kind.MIME.Value)
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return "", ErrBinaryInput
	}

	text := string(data)
	if strings.HasSuffix(text, "\r\n") {
		return strings.TrimSuffix(text, "\r\n"), nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}

// ReadInputFile opens path and passes it to ReadInput.
func ReadInputFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ReadInput(f)
}

// SplitLines splits text on newlines, dropping a carriage return before each.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
