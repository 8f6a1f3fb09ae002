package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/surge-downloader/areatext/internal/align"
	"github.com/surge-downloader/areatext/internal/layout"
)

var ErrUnknownKey = errors.New("unknown settings key")

// Settings holds the persisted defaults for the CLI.
type Settings struct {
	Layout LayoutSettings `yaml:"layout"`
	Align  AlignSettings  `yaml:"align"`
}

// LayoutSettings are the defaults for `areatext box` and `areatext preview`.
type LayoutSettings struct {
	Columns int    `yaml:"columns"`
	Border  string `yaml:"border"`
	// BorderChar, when set, replaces Border with a border made of one glyph.
	BorderChar string `yaml:"border_char,omitempty"`
	Spacer     string `yaml:"spacer"`
	Indent     int    `yaml:"indent"`
	Justify    string `yaml:"justify"`
	MinHeight  int    `yaml:"min_height"`
	Color      string `yaml:"color,omitempty"`

	Padding       *int `yaml:"padding,omitempty"`
	PaddingInline *int `yaml:"padding_inline,omitempty"`
	PaddingBlock  *int `yaml:"padding_block,omitempty"`
	PaddingTop    *int `yaml:"padding_top,omitempty"`
	PaddingLeft   *int `yaml:"padding_left,omitempty"`
	PaddingBottom *int `yaml:"padding_bottom,omitempty"`
	PaddingRight  *int `yaml:"padding_right,omitempty"`
}

// AlignSettings are the defaults for `areatext align` and `areatext grid`.
type AlignSettings struct {
	Side      string `yaml:"side"`
	Fill      string `yaml:"fill"`
	Separator string `yaml:"separator"`
	Join      string `yaml:"join"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Layout: LayoutSettings{
			Columns: 40,
			Border:  "single",
			Spacer:  " ",
			Justify: "start",
		},
		Align: AlignSettings{
			Side:      "left",
			Fill:      " ",
			Separator: "\t",
			Join:      " ",
		},
	}
}

// LoadSettings reads the settings file. A missing file yields the defaults;
// keys absent from the file keep their default value.
func LoadSettings() (*Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(GetSettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// SaveSettings writes s to the settings file while holding a file lock so
// concurrent `config set` calls cannot interleave.
func SaveSettings(s *Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := EnsureDirs(); err != nil {
		return fmt.Errorf("failed to ensure config dirs: %w", err)
	}

	lock := flock.New(filepath.Join(GetAppDir(), "settings.lock"))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock settings: %w", err)
	}
	defer lock.Unlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := GetSettingsPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Validate checks that every value can be turned into layout/align options.
func (s *Settings) Validate() error {
	if _, _, err := s.Layout.ToOptions(); err != nil {
		return err
	}
	if _, err := s.Align.ToOptions(); err != nil {
		return err
	}
	return nil
}

// ResolveBorder returns the border described by BorderChar or Border.
func (l LayoutSettings) ResolveBorder() (layout.Border, error) {
	if l.BorderChar != "" {
		return layout.MakeBorder(l.BorderChar, l.Spacer)
	}
	return layout.LookupBorder(l.Border)
}

// ToOptions converts the layout settings into block options. The
// justification is also returned on its own for callers re-aligning a block.
func (l LayoutSettings) ToOptions() (layout.Options, layout.Justification, error) {
	if l.Columns < 1 {
		return layout.Options{}, 0, fmt.Errorf("%w: %d", layout.ErrInvalidColumns, l.Columns)
	}
	border, err := l.ResolveBorder()
	if err != nil {
		return layout.Options{}, 0, err
	}
	j, err := layout.ParseJustification(l.Justify)
	if err != nil {
		return layout.Options{}, 0, err
	}
	opts := layout.Options{
		Columns:       l.Columns,
		Border:        border,
		Indent:        l.Indent,
		Justify:       j,
		Padding:       l.Padding,
		PaddingInline: l.PaddingInline,
		PaddingBlock:  l.PaddingBlock,
		PaddingTop:    l.PaddingTop,
		PaddingLeft:   l.PaddingLeft,
		PaddingBottom: l.PaddingBottom,
		PaddingRight:  l.PaddingRight,
		MinHeight:     l.MinHeight,
	}
	return opts, j, nil
}

// ToOptions converts the align settings. Fill must be a single character.
func (a AlignSettings) ToOptions() (align.Options, error) {
	side, err := align.ParseSide(a.Side)
	if err != nil {
		return align.Options{}, err
	}
	fill, err := parseFill(a.Fill)
	if err != nil {
		return align.Options{}, err
	}
	return align.Options{Side: side, Fill: fill}, nil
}

func parseFill(s string) (rune, error) {
	if s == "" {
		return ' ', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("fill must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// Keys lists the keys accepted by Set.
func Keys() []string {
	return []string{
		"layout.columns", "layout.border", "layout.border_char", "layout.spacer",
		"layout.indent", "layout.justify", "layout.min_height", "layout.color",
		"layout.padding", "layout.padding_inline", "layout.padding_block",
		"layout.padding_top", "layout.padding_left", "layout.padding_bottom", "layout.padding_right",
		"align.side", "align.fill", "align.separator", "align.join",
	}
}

// Set assigns a value by dotted key. Padding keys accept "unset" to clear them.
// The result is validated; on error s is left unchanged.
func (s *Settings) Set(key, value string) error {
	next := *s
	l := &next.Layout
	a := &next.Align

	var err error
	switch strings.ToLower(key) {
	case "layout.columns":
		l.Columns, err = strconv.Atoi(value)
	case "layout.border":
		l.Border = value
	case "layout.border_char":
		l.BorderChar = value
	case "layout.spacer":
		l.Spacer = value
	case "layout.indent":
		l.Indent, err = strconv.Atoi(value)
	case "layout.justify":
		l.Justify = value
	case "layout.min_height":
		l.MinHeight, err = strconv.Atoi(value)
	case "layout.color":
		l.Color = value
	case "layout.padding":
		l.Padding, err = parseOptionalInt(value)
	case "layout.padding_inline":
		l.PaddingInline, err = parseOptionalInt(value)
	case "layout.padding_block":
		l.PaddingBlock, err = parseOptionalInt(value)
	case "layout.padding_top":
		l.PaddingTop, err = parseOptionalInt(value)
	case "layout.padding_left":
		l.PaddingLeft, err = parseOptionalInt(value)
	case "layout.padding_bottom":
		l.PaddingBottom, err = parseOptionalInt(value)
	case "layout.padding_right":
		l.PaddingRight, err = parseOptionalInt(value)
	case "align.side":
		a.Side = value
	case "align.fill":
		a.Fill = value
	case "align.separator":
		a.Separator = value
	case "align.join":
		a.Join = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

func parseOptionalInt(value string) (*int, error) {
	if value == "" || strings.EqualFold(value, "unset") {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, layout.ErrNegativePadding
	}
	return &n, nil
}
