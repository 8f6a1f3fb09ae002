package utils

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"trailing newline dropped", "hello\n", "hello"},
		{"only one newline dropped", "hello\n\n", "hello\n"},
		{"crlf dropped", "hello\r\n", "hello"},
		{"inner newlines kept", "a\nb\n", "a\nb"},
		{"empty", "", ""},
		{"unicode", "ünïcödé ─ text\n", "ünïcödé ─ text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadInput(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadInput(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ReadInput(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadInput_RejectsBinary(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	zip := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}
	nul := []byte("text\x00more")

	for name, data := range map[string][]byte{"png": png, "zip": zip, "nul": nul} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadInput(bytes.NewReader(data))
			if !errors.Is(err, ErrBinaryInput) {
				t.Errorf("expected ErrBinaryInput, got %v", err)
			}
		})
	}
}

func TestReadInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("a bb ccc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadInputFile(path)
	if err != nil || got != "a bb ccc" {
		t.Errorf("ReadInputFile = %q, %v", got, err)
	}

	if _, err := ReadInputFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\r\nb\nc", []string{"a", "b", "c"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		if got := SplitLines(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
