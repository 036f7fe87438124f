package service

import (
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/reshetovitsme/chat-moderator/internal/modules/blocklist/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matcher compares normalized text with patterns and caches compiled
// wildcard expressions by pattern text
type matcher struct {
	regexps sync.Map // lower-cased pattern -> *regexp.Regexp
}

// normalize lower-cases s so "SPAM", "Spam" and "spam" compare equal.
// Lower-casing keeps a '?' wildcard aligned with one code point, full
// folding would turn "ß" into "ss". A Caser is stateful, hence one per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}

// countWildcards counts '*' and '?' runes
func countWildcards(pattern string) int {
	n := 0
	for _, r := range pattern {
		if r == '*' || r == '?' {
			n++
		}
	}
	return n
}

// wildcardExpr converts a wildcard pattern to an anchored expression one
// code point at a time, so multi-byte glyphs are quoted whole
func wildcardExpr(pattern string) string {
	var b strings.Builder
	b.WriteString("(?s)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}

// matches reports whether normalized text matches p. Wildcard patterns over
// the wildcard cap never match.
func (m *matcher) matches(p domain.Pattern, text string) bool {
	pattern := normalize(p.Pattern)
	if pattern == "" {
		return false
	}

	switch p.MatchType {
	case domain.MatchTypeExact:
		return strings.Contains(text, pattern)
	case domain.MatchTypeWildcard:
		re := m.compile(pattern)
		return re != nil && re.MatchString(text)
	default:
		slog.Warn("Skipping blocklist pattern with unknown match type", "pattern_id", p.ID, "match_type", p.MatchType)
		return false
	}
}

func (m *matcher) compile(pattern string) *regexp.Regexp {
	if cached, ok := m.regexps.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}

	if n := countWildcards(pattern); n > domain.MaxWildcards {
		slog.Debug("Wildcard pattern exceeds the wildcard cap, skipping", "pattern", pattern, "wildcards", n)
		return nil
	}

	re, err := regexp.Compile(wildcardExpr(pattern))
	if err != nil {
		slog.Warn("Invalid wildcard pattern, skipping", "pattern", pattern, "error", err)
		return nil
	}
	actual, _ := m.regexps.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp)
}
