package gifservice

import "strings"

// maxKeywords caps how many extracted words make up a search query
const maxKeywords = 3

// stopWords are filtered out of messages before searching
var stopWords = map[string]bool{
	"the": true, "is": true, "a": true, "an": true, "and": true,
	"or": true, "but": true, "in": true, "on": true, "at": true,
	"to": true, "for": true, "of": true, "with": true, "by": true,
	"this": true, "that": true, "these": true, "those": true,
	"i": true, "me": true, "my": true, "you": true, "your": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
}

// ExtractKeywords reduces a free-form message to a short search query by
// dropping stop words and very short tokens. When nothing survives the filter
// the trimmed original message is returned so the search still has input.
func ExtractKeywords(message string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(message)))

	keywords := make([]string, 0, maxKeywords)
	for _, word := range words {
		if len(word) <= 2 || stopWords[word] {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxKeywords {
			break
		}
	}

	if len(keywords) == 0 {
		return strings.TrimSpace(message)
	}
	return strings.Join(keywords, " ")
}
