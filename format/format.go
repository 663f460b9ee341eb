package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects how a list model tree is rendered.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
	CBORFormat
)

var ErrBadFormat = errors.New("bad format")

// info describes a format: its canonical name, its one letter flag, the
// file suffixes it is recognized by (the first is written) and whether it
// carries the item structure as plain data or as the text dump.
type info struct {
	name   string
	short  string
	suffix []string
	binary bool
	items  bool
}

var formats = [...]info{
	TextFormat: {name: "text", short: "t", suffix: []string{".txt"}},
	YAMLFormat: {name: "yaml", short: "y", suffix: []string{".yaml", ".yml"}, items: true},
	JSONFormat: {name: "json", short: "j", suffix: []string{".json"}, items: true},
	CBORFormat: {name: "cbor", short: "c", suffix: []string{".cbor"}, binary: true, items: true},
}

func (f Format) info() (info, bool) {
	if f < 0 || int(f) >= len(formats) {
		return info{}, false
	}
	return formats[f], true
}

func ParseFormat(v string) (Format, error) {
	for i, fi := range formats {
		if v == fi.name || v == fi.short {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// ForPath returns the format named by the suffix of path, for instance
// YAMLFormat for "fruit.yml".
func ForPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	for i, fi := range formats {
		for _, s := range fi.suffix {
			if s == ext {
				return Format(i), true
			}
		}
	}
	return 0, false
}

func (f Format) String() string {
	fi, ok := f.info()
	if !ok {
		return fmt.Sprintf("<format %d>", int(f))
	}
	return fi.name
}

func (f Format) MarshalText() ([]byte, error) {
	fi, ok := f.info()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
	return []byte(fi.name), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsBinary reports whether the format is not meant for terminals. Colors
// never apply to binary output.
func (f Format) IsBinary() bool {
	fi, _ := f.info()
	return fi.binary
}

// IsItems reports whether the format exports the items as plain data, the
// shape accepted by model.Model.Append, rather than the tree dump.
func (f Format) IsItems() bool {
	fi, _ := f.info()
	return fi.items
}

func (f Format) IsText() bool { return f == TextFormat }

// Suffix returns the file extension written for this format.
func (f Format) Suffix() string {
	fi, ok := f.info()
	if !ok {
		return ""
	}
	return fi.suffix[0]
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	res := make([]Format, len(formats))
	for i := range res {
		res[i] = Format(i)
	}
	return res
}
