package varargs

import (
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Token is an @-prefixed identifier found in region text that no vocabulary
// placeholder accounts for. Such tokens are copied into every expansion
// unchanged.
type Token struct {
	Text string
	// Line is the 1-based line within the region body.
	Line int
	// Suggestions lists vocabulary tokens resembling Text, best first.
	Suggestions []string
}

var tokenPattern = regexp.MustCompile(`@[A-Za-z_][A-Za-z0-9_]*`)

// Unknown returns the unrecognized @-tokens of block in order of appearance.
//
// A token is recognized when it begins with a vocabulary token, since
// substitution is purely textual (e.g. "@NUMBER" still has its "@NUM"
// replaced). The region markers are also recognized.
func Unknown(block string) []Token {
	var found []Token

	for _, loc := range tokenPattern.FindAllStringIndex(block, -1) {
		text := block[loc[0]:loc[1]]
		if known(text) {
			continue
		}

		found = append(found, Token{
			Text:        text,
			Line:        strings.Count(block[:loc[0]], "\n") + 1,
			Suggestions: Suggest(text),
		})
	}

	return found
}

func known(token string) bool {
	if strings.HasPrefix(token, StartMarker) ||
		strings.HasPrefix(token, EndMarker) {
		return true
	}

	for _, p := range Vocabulary() {
		if strings.HasPrefix(token, p.String()) {
			return true
		}
	}

	return false
}

// tokens returns the vocabulary tokens in precedence order.
func tokens() []string {
	vocab := Vocabulary()
	names := make([]string, len(vocab))

	for i, p := range vocab {
		names[i] = p.String()
	}

	return names
}

// Suggest returns the vocabulary tokens that fuzzy-match query, best first.
// The leading "@" of query is optional.
func Suggest(query string) []string {
	query = strings.TrimPrefix(strings.TrimSpace(query), "@")
	if query == "" {
		return nil
	}

	names := tokens()
	matches := fuzzy.Find("@"+query, names)
	result := make([]string, 0, len(matches))

	for _, m := range matches {
		result = append(result, m.Str)
	}

	return result
}

// Lookup returns the placeholder whose token is exactly s.
func Lookup(s string) (Placeholder, bool) {
	for _, p := range Vocabulary() {
		if p.String() == s {
			return p, true
		}
	}

	return 0, false
}
