// Package document turns files into the rune sequences compared by lcs.
//
// Exactly one encoding is used per run and it is taken from the
// configuration, never from the process locale. UTF-8 is checked strictly.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/piggynl/overlap/config"
	"github.com/piggynl/overlap/util"
)

var (
	ErrInvalidEncoding = errors.New("invalid byte sequence")
	ErrUnknownEncoding = errors.New("unknown encoding")
)

const bom = '\uFEFF'

type DecodeError struct {
	Encoding string
	Offset   int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d for encoding %s", ErrInvalidEncoding, e.Offset, e.Encoding)
}

func (e *DecodeError) Unwrap() error {
	return ErrInvalidEncoding
}

func Load(filename string, cfg config.DocumentConfig) ([]rune, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := Decode(raw, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", filename, err)
	}
	return s, nil
}

func Decode(raw []byte, cfg config.DocumentConfig) ([]rune, error) {
	replacer, err := util.NewReplacer(cfg.Replace)
	if err != nil {
		return nil, err
	}
	name := cfg.Encoding
	if isUTF8(name) {
		if off := invalidOffset(raw); off >= 0 {
			return nil, &DecodeError{"utf-8", off}
		}
	} else {
		enc, err := lookup(name)
		if err != nil {
			return nil, err
		}
		// Decoders reject malformed input where the encoding allows it to
		// be detected; the rest comes out as U+FFFD.
		if raw, _, err = transform.Bytes(enc.NewDecoder(), raw); err != nil {
			return nil, fmt.Errorf("%w for encoding %s: %v", ErrInvalidEncoding, name, err)
		}
	}
	s := string(raw)
	if cfg.StripBOM {
		s = strings.TrimPrefix(s, string(bom))
	}
	if !replacer.Empty() {
		s = replacer.Replace(s)
	}
	return []rune(s), nil
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

func lookup(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// invalidOffset returns the offset of the first byte that does not start a
// valid UTF-8 sequence, or -1.
func invalidOffset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
