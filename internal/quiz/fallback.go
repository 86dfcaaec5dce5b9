package quiz

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const maxTopicWords = 8

// English function words excluded from the topic pool; without this the
// pool fills with "the" and "and" instead of content words.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "were": {},
	"with": {}, "this": {}, "that": {}, "from": {}, "not": {}, "but": {},
	"you": {}, "your": {}, "its": {}, "has": {}, "had": {}, "have": {},
	"can": {}, "will": {}, "all": {}, "any": {}, "into": {}, "than": {},
}

// Fallback deterministically synthesizes max(1, n) questions so the client
// never receives an empty quiz. It is deliberately low quality: a safety
// net when the remote model is unavailable or returns garbage, not a
// substitute generator.
func Fallback(text string, n int, subject, topics string) []Question {
	if n < 1 {
		n = 1
	}
	baseSubject := subject
	if baseSubject == "" {
		baseSubject = "General"
	}
	pool := topicPool(text, topics)

	out := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		stem := fmt.Sprintf("concept %d", i+1)
		if len(pool) > 0 {
			stem = pool[i%len(pool)]
		}
		correct := "Basic fact about " + stem
		out = append(out, Question{
			ID:       uuid.NewString(),
			Question: fmt.Sprintf("Which statement about %s is correct?", stem),
			Options: []string{
				correct,
				"Unrelated detail about " + baseSubject,
				"Common misconception about " + stem,
				"Irrelevant statement",
			},
			CorrectAnswer: correct,
		})
	}
	return out
}

// topicPool prefers explicit comma-separated topics; otherwise it collects
// alphabetic content words of length 3-12 from the text, deduplicated in
// first-seen order and capped.
func topicPool(text, topics string) []string {
	if topics != "" {
		var pool []string
		for _, t := range strings.Split(topics, ",") {
			if t = strings.TrimSpace(t); t != "" {
				pool = append(pool, t)
			}
		}
		if len(pool) > 0 {
			return pool
		}
	}
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var pool []string
	for _, w := range strings.FieldsFunc(text, func(r rune) bool { return !unicode.IsLetter(r) }) {
		if n := len([]rune(w)); n < 3 || n > 12 {
			continue
		}
		key := strings.ToLower(w)
		if _, skip := stopwords[key]; skip {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, w)
		if len(pool) == maxTopicWords {
			break
		}
	}
	return pool
}
