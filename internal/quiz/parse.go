package quiz

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var errNoQuestions = errors.New("quiz: no usable questions in model output")

// ParseQuestions decodes the model's text content into validated questions.
// It tries, in order: a strict JSON array, an object wrapping the array
// under "questions", and finally a lenient repair pass for almost-JSON
// (code fences, single quotes, trailing commas). Entries violating the MCQ
// invariant are dropped; zero surviving entries is an error so the caller
// can fall back.
func ParseQuestions(content string) ([]Question, error) {
	for _, candidate := range []string{content, repair(content)} {
		if qs := decode(candidate); len(qs) > 0 {
			return qs, nil
		}
	}
	return nil, errNoQuestions
}

func decode(s string) []Question {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var arr []Question
	if err := json.Unmarshal([]byte(s), &arr); err == nil {
		return validOnly(arr)
	}
	var wrapped struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(s), &wrapped); err == nil {
		return validOnly(wrapped.Questions)
	}
	return nil
}

func validOnly(qs []Question) []Question {
	out := qs[:0]
	for _, q := range qs {
		if q.Valid() {
			out = append(out, q)
		}
	}
	return out
}

var (
	fenceRe         = regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// repair normalizes common model deviations from strict JSON: markdown
// fences, prose around the payload, Python-style single quotes, and
// trailing commas.
func repair(s string) string {
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	start := strings.IndexAny(s, "[{")
	end := strings.LastIndexAny(s, "]}")
	if start < 0 || end <= start {
		return ""
	}
	s = s[start : end+1]
	if !strings.Contains(s, `"`) {
		s = strings.ReplaceAll(s, "'", `"`)
	}
	return trailingCommaRe.ReplaceAllString(s, "$1")
}
