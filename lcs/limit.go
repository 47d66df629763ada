package lcs

import (
	"errors"
	"fmt"
)

var ErrResourceExhausted = errors.New("resource exhausted")

// LimitError reports an input pair rejected before any work buffer was
// allocated.
type LimitError struct {
	What  string
	Need  int64
	Limit int64
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s needs %d, limit is %d: %s", e.What, e.Need, e.Limit, ErrResourceExhausted)
}

func (e *LimitError) Unwrap() error {
	return ErrResourceExhausted
}

// Limit bounds a single comparison. Zero fields are unbounded.
type Limit struct {
	MaxBuffer int   `json:"maxBuffer"`
	MaxCells  int64 `json:"maxCells"`
}

func (l Limit) check(a, b []rune) error {
	if l.MaxBuffer > 0 && len(b)+1 > l.MaxBuffer {
		return &LimitError{"work buffer", int64(len(b)) + 1, int64(l.MaxBuffer)}
	}
	if l.MaxCells > 0 {
		cells := int64(len(a)) * int64(len(b))
		if len(a) != 0 && cells/int64(len(a)) != int64(len(b)) || cells > l.MaxCells {
			return &LimitError{"comparison table", cells, l.MaxCells}
		}
	}
	return nil
}

// Length is like the package level Length, but refuses inputs beyond the
// limit. The buffer is sized by b; when only a fits the buffer bound the
// operands are swapped, which does not change the result.
func (l Limit) Length(a, b []rune) (int, error) {
	if err := l.check(a, b); err != nil {
		if l.check(b, a) != nil {
			return 0, err
		}
		a, b = b, a
	}
	return Length(a, b), nil
}

// Compare measures how much of original is reproduced in candidate.
func (l Limit) Compare(original, candidate []rune) (Result, error) {
	common, err := l.Length(original, candidate)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Original:  len(original),
		Candidate: len(candidate),
		Common:    common,
		Ratio:     Ratio(common, len(original)),
	}, nil
}
