// Package search implements tag and content matching for note queries.
package search

import (
	"regexp"
	"strings"

	"github.com/cheatnote/cheatnote/internal/model"
)

// Options configures a single query. The zero value matches every note.
// Regex selects regular-expression mode for Pattern; CaseInsensitive and
// Multiline apply in both modes where meaningful, Exact and WordBoundary are
// literal-mode and regex-mode refinements respectively.
type Options struct {
	Pattern         string
	Tags            string
	CaseInsensitive bool
	Regex           bool
	Exact           bool
	WordBoundary    bool
	Multiline       bool
}

// Match reports whether the note satisfies both the content pattern and the
// tag filter.
func Match(n *model.Note, o *Options) bool {
	return MatchContent(n, o) && MatchTags(n.Tags, o.Tags)
}

// MatchTags reports whether noteTags satisfies the comma-separated required
// tag list queryTags. Matching is case-insensitive; every non-empty query
// token must occur as a substring of the note's tags, so a note with extra
// tags still matches. An empty queryTags matches unconditionally.
func MatchTags(noteTags, queryTags string) bool {
	if queryTags == "" {
		return true
	}
	if noteTags == "" {
		return false
	}
	have := strings.ToLower(noteTags)
	for _, tok := range strings.Split(strings.ToLower(queryTags), ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if !strings.Contains(have, tok) {
			return false
		}
	}
	return true
}

// MatchContent reports whether the note's title, content, or tags satisfy the
// pattern. An empty pattern matches unconditionally. In regex mode a pattern
// that is oversized or fails to compile is a non-match, never an error.
func MatchContent(n *model.Note, o *Options) bool {
	if o == nil || o.Pattern == "" {
		return true
	}

	if o.Regex {
		re := compile(o)
		if re == nil {
			return false
		}
		return re.MatchString(n.Title) ||
			re.MatchString(n.Content) ||
			re.MatchString(n.Tags)
	}

	title, content, tags := n.Title, n.Content, n.Tags
	pattern := o.Pattern
	if o.CaseInsensitive {
		title = strings.ToLower(title)
		content = strings.ToLower(content)
		tags = strings.ToLower(tags)
		pattern = strings.ToLower(pattern)
	}

	if o.Exact {
		return title == pattern || content == pattern || tags == pattern
	}
	return strings.Contains(title, pattern) ||
		strings.Contains(content, pattern) ||
		strings.Contains(tags, pattern)
}

// compile builds the regular expression for o, wrapping the pattern in word
// boundaries and prefixing case-insensitive and multiline flags as requested.
// Multiline binds ^ and $ to line boundaries instead of the whole text.
func compile(o *Options) *regexp.Regexp {
	if len(o.Pattern) > model.MaxPatternLen {
		return nil
	}
	pat := o.Pattern
	if o.WordBoundary {
		pat = `\b` + pat + `\b`
	}
	var flags string
	if o.CaseInsensitive {
		flags += "i"
	}
	if o.Multiline {
		flags += "m"
	}
	if flags != "" {
		pat = "(?" + flags + ")" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return nil
	}
	return re
}
