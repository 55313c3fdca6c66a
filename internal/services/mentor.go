package services

import (
	"fmt"
	"strings"
)

var mentorTips = map[string][]string{
	"beginner": {
		"Break problems into small steps and write pseudo-code first.",
		"Practice daily: tiny consistent sessions beat long rare ones.",
		"Read errors carefully; they often tell you exactly what to fix.",
	},
	"intermediate": {
		"Write tests for edge cases before refactoring.",
		"Profile performance before optimizing.",
		"Learn your debugger and step through code.",
	},
	"advanced": {
		"Design for maintainability; prefer clarity over cleverness.",
		"Document assumptions and invariants in code.",
		"Benchmark with realistic data and environments.",
	},
}

// MentorAnswer formats the canned tip set for the given level. An empty
// language defaults to "programming"; an unrecognized level falls back to
// the beginner set. The answer depends on nothing else.
func MentorAnswer(language, level string) string {
	if language == "" {
		language = "programming"
	}
	if level == "" {
		level = "beginner"
	}
	tips, ok := mentorTips[level]
	if !ok {
		tips = mentorTips["beginner"]
	}
	return fmt.Sprintf("Here are some %s tips for %s:\n- %s", level, titleCase(language), strings.Join(tips, "\n- "))
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
