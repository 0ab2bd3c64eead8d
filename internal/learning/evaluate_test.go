package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase and trim", input: "  Avoid  ", expected: "avoid"},
		{name: "punctuation stripped", input: `"Hello!" (world)?`, expected: "hello world"},
		{name: "apostrophe", input: "don't", expected: "dont"},
		{name: "only punctuation", input: ".,!?;:", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestSplitAccepted(t *testing.T) {
	got := SplitAccepted("menghindari; Mencegah, menjauhi / ; ,elak.")
	assert.Equal(t, []string{"menghindari", "mencegah", "menjauhi", "elak"}, got)

	assert.Empty(t, SplitAccepted(" ; , / "))
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		accepted string
		expected Verdict
	}{
		{name: "exact match", answer: "menghindari", accepted: "menghindari; mencegah", expected: Correct},
		{name: "match after normalization", answer: "  Mencegah! ", accepted: "menghindari; mencegah", expected: Correct},
		{name: "english listed in accepted", answer: "Avoid", accepted: "avoid, menghindari", expected: Correct},
		{name: "slash delimiter", answer: "rumah", accepted: "gedung/rumah", expected: Correct},
		{name: "one typo tolerated", answer: "aple", accepted: "apple", expected: Correct},
		{name: "one substitution tolerated", answer: "rumeh", accepted: "rumah", expected: Correct},
		{name: "too short", answer: "ap", accepted: "apple", expected: Wrong},
		{name: "single char against two char word", answer: "a", accepted: "ab", expected: Wrong},
		{name: "two char typo below floor", answer: "ac", accepted: "ab", expected: Wrong},
		{name: "three char typo allowed", answer: "cet", accepted: "cat", expected: Correct},
		{name: "two typos rejected", answer: "mengindar", accepted: "menghindari", expected: Wrong},
		{name: "no accepted translations", answer: "apa", accepted: "", expected: Wrong},
		{name: "blank accepted translations", answer: "apa", accepted: "   ", expected: Wrong},
		{name: "only delimiters", answer: "apa", accepted: ";,/", expected: Wrong},
		{name: "empty answer", answer: "", accepted: "apa", expected: Wrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Evaluate(tt.answer, tt.accepted))
		})
	}
}

func TestVerdict_IsCorrect(t *testing.T) {
	assert.True(t, Correct.IsCorrect())
	assert.False(t, Wrong.IsCorrect())
}
