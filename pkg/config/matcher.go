package config

import (
	"regexp"
	"strings"

	"github.com/matzehuels/apigraph/pkg/errors"
)

// regexMeta are characters that turn a matcher entry into a pattern.
const regexMeta = `*+?[](){}|^$\`

// Matcher matches type names against exact names and anchored regular
// expressions. A nil *Matcher matches nothing.
type Matcher struct {
	names    map[string]bool
	patterns []*regexp.Regexp
}

// Compile builds a matcher. Entries wrapped in slashes ("/.*Base$/") or
// containing regex metacharacters are regular expressions matched against
// the whole name; anything else is an exact name.
func Compile(entries []string) (*Matcher, error) {
	m := &Matcher{names: make(map[string]bool)}
	for _, entry := range entries {
		expr, isPattern := patternOf(entry)
		if !isPattern {
			m.names[entry] = true
			continue
		}
		re, err := regexp.Compile("^(?:" + expr + ")$")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid pattern %q", entry)
		}
		m.patterns = append(m.patterns, re)
	}
	return m, nil
}

// MustCompile is like [Compile] but panics on an invalid pattern.
func MustCompile(entries ...string) *Matcher {
	m, err := Compile(entries)
	if err != nil {
		panic(err)
	}
	return m
}

func patternOf(entry string) (string, bool) {
	if len(entry) >= 2 && strings.HasPrefix(entry, "/") && strings.HasSuffix(entry, "/") {
		return entry[1 : len(entry)-1], true
	}
	return entry, strings.ContainsAny(entry, regexMeta)
}

// Match reports whether name matches any entry.
func (m *Matcher) Match(name string) bool {
	if m == nil {
		return false
	}
	if m.names[name] {
		return true
	}
	for _, re := range m.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no entries.
func (m *Matcher) Empty() bool {
	return m == nil || (len(m.names) == 0 && len(m.patterns) == 0)
}
