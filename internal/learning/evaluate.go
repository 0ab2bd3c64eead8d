package learning

import (
	"strings"
	"unicode/utf8"
)

// Verdict is the binary outcome of checking an answer
type Verdict string

const (
	Correct Verdict = "CORRECT"
	Wrong   Verdict = "WRONG"
)

// IsCorrect reports whether the verdict is Correct
func (v Verdict) IsCorrect() bool {
	return v == Correct
}

var punctuation = strings.NewReplacer(
	".", "", ",", "", "!", "", "?", "", ";", "", ":", "",
	`"`, "", "'", "", "(", "", ")", "",
)

// Normalize lowercases, trims and strips punctuation
func Normalize(text string) string {
	return punctuation.Replace(strings.ToLower(strings.TrimSpace(text)))
}

// SplitAccepted splits a delimited list of translations on ; , and /
// and returns the normalized, non-empty entries.
func SplitAccepted(accepted string) []string {
	parts := strings.FieldsFunc(accepted, func(r rune) bool {
		return r == ';' || r == ',' || r == '/'
	})

	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := Normalize(p); n != "" {
			answers = append(answers, n)
		}
	}
	return answers
}

// Evaluate checks a typed answer against a delimited list of accepted translations.
// A single typo is tolerated as long as the answer is not too short to be meaningful.
func Evaluate(answer, accepted string) Verdict {
	if strings.TrimSpace(accepted) == "" {
		return Wrong
	}

	user := Normalize(answer)
	userLen := utf8.RuneCountInString(user)

	for _, candidate := range SplitAccepted(accepted) {
		if user == candidate {
			return Correct
		}

		candLen := utf8.RuneCountInString(candidate)
		if Distance(user, candidate) == 1 &&
			abs(userLen-candLen) <= 1 &&
			userLen >= max(3, candLen-1) {
			return Correct
		}
	}

	return Wrong
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
