package util

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/piggynl/overlap/config"
)

// Replacer applies replacement rules in order. The zero value and a
// Replacer without rules leave text untouched.
type Replacer struct {
	rule  []config.Replace
	index []*regexp.Regexp
}

func NewReplacer(rule []config.Replace) (Replacer, error) {
	var err error
	index := make([]*regexp.Regexp, len(rule))
	for i, item := range rule {
		if !item.Regexp {
			continue
		}
		if index[i], err = regexp.Compile(item.From); err != nil {
			return Replacer{}, fmt.Errorf("unable to compile regexp %s: %w", item.From, err)
		}
	}
	return Replacer{rule, index}, nil
}

func (r Replacer) Empty() bool {
	return len(r.rule) == 0
}

func (r Replacer) Replace(s string) string {
	for i, item := range r.rule {
		if !item.Regexp {
			s = strings.ReplaceAll(s, item.From, item.To)
		} else {
			s = r.index[i].ReplaceAllString(s, item.To)
		}
	}
	return s
}
