package services

import "strings"

// ConvertCode applies the demo language conversion and returns the converted
// code plus a human-readable note. The conversions are unconditional literal
// substring replacements with no lexical awareness: matches inside string
// literals, identifiers, or comments get rewritten too. That limitation is
// part of the current behavior, not something to quietly correct here.
func ConvertCode(sourceLanguage, targetLanguage, code string) (string, string) {
	src := strings.ToLower(sourceLanguage)
	tgt := strings.ToLower(targetLanguage)
	converted := strings.TrimSpace(code)

	if src == tgt {
		return converted, "Source and target languages are the same."
	}

	switch {
	case (src == "javascript" || src == "js") && tgt == "python":
		converted = strings.ReplaceAll(converted, "console.log", "print")
		converted = strings.ReplaceAll(converted, "===", "==")
		converted = strings.ReplaceAll(converted, "!==", "!=")
		converted = strings.ReplaceAll(converted, "true", "True")
		converted = strings.ReplaceAll(converted, "false", "False")
		return converted, "Converted console.log to print and booleans to Python style."
	case src == "python" && (tgt == "javascript" || tgt == "js"):
		converted = strings.ReplaceAll(converted, "print(", "console.log(")
		converted = strings.ReplaceAll(converted, "True", "true")
		converted = strings.ReplaceAll(converted, "False", "false")
		return converted, "Converted print to console.log and booleans to JS style."
	default:
		return converted, "Generic transformation applied. Manual review recommended."
	}
}
