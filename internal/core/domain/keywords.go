package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonWordPattern matches everything that is not a letter, digit, or
// whitespace, in any script. Markdown punctuation (#, *, `, _, [, ],
// parens) falls out with the rest.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// stopwords are common English terms that carry no retrieval signal.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"if": {}, "then": {}, "for": {}, "to": {}, "of": {}, "in": {},
	"on": {}, "at": {}, "by": {}, "with": {}, "from": {}, "as": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "it": {}, "its": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "not": {}, "can": {}, "will": {},
	"has": {}, "have": {}, "had": {}, "do": {}, "you": {}, "your": {},
	"they": {}, "their": {},
}

// IsStopword reports whether a lowercased token is filtered from keywords.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// ExtractKeywords normalises text into a capped, ordered keyword list.
//
// The text is lowercased, stripped of markdown punctuation and other
// non-word characters, and split on whitespace. Tokens shorter than
// minWordLength or present in the stopword list are dropped. Duplicates
// keep their first occurrence. At most maxKeywords are returned.
//
// Both chunk text and raw queries go through this same function, so a
// query term can only match a chunk term the extractor would also keep.
func ExtractKeywords(text string, maxKeywords, minWordLength int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	var keywords []string
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(token) < minWordLength {
			continue
		}
		if IsStopword(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
		if len(keywords) == maxKeywords {
			break
		}
	}

	return keywords
}
