package linesearch

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds a single regexp2 evaluation.
const matchTimeout = time.Second

// Matcher reports whether a line matches a compiled pattern.
type Matcher interface {
	MatchString(s string) (bool, error)
}

// Backend compiles patterns into matchers.
type Backend interface {
	Name() string
	Compile(pattern string) (Matcher, error)
}

// Regexp2Backend uses github.com/dlclark/regexp2.
type Regexp2Backend struct{}

func (Regexp2Backend) Name() string { return "regexp2" }

func (Regexp2Backend) Compile(pattern string) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("regexp2: compiling %q: %w", pattern, err)
	}
	re.MatchTimeout = matchTimeout
	return re, nil
}

// StdBackend uses the standard library regexp package.
type StdBackend struct{}

func (StdBackend) Name() string { return "regexp" }

func (StdBackend) Compile(pattern string) (Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("regexp: compiling %q: %w", pattern, err)
	}
	return stdMatcher{re}, nil
}

type stdMatcher struct {
	re *regexp.Regexp
}

func (m stdMatcher) MatchString(s string) (bool, error) {
	return m.re.MatchString(s), nil
}

// BackendByName returns the backend registered under name.
func BackendByName(name string) (Backend, error) {
	switch name {
	case "regexp2":
		return Regexp2Backend{}, nil
	case "regexp":
		return StdBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown regex backend %q", name)
	}
}
