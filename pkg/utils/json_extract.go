package utils

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls the first balanced JSON object or array out of free-form
// model output. Models routinely wrap the payload in markdown fences or prose
// ("Here is your plan: { ... } Enjoy!"); everything around the first balanced
// span is discarded. Returns ErrNoJSONPayload when no parseable span exists.
func ExtractJSON(response string) (string, error) {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	if objStart != -1 && (arrStart == -1 || objStart < arrStart) {
		if end := findMatchingBrace(response, objStart); end != -1 {
			response = response[objStart : end+1]
		} else {
			return "", ErrNoJSONPayload
		}
	} else if arrStart != -1 {
		if end := findMatchingBracket(response, arrStart); end != -1 {
			response = response[arrStart : end+1]
		} else {
			return "", ErrNoJSONPayload
		}
	} else {
		return "", ErrNoJSONPayload
	}

	response = strings.TrimSpace(response)
	if !json.Valid([]byte(response)) {
		return "", ErrNoJSONPayload
	}
	return response, nil
}

func findMatchingBrace(s string, start int) int {
	return findMatching(s, start, '{', '}')
}

func findMatchingBracket(s string, start int) int {
	return findMatching(s, start, '[', ']')
}

// findMatching walks the string from the opening delimiter, tracking nesting
// depth while skipping string literals and escape sequences.
func findMatching(s string, start int, opener, closer byte) int {
	if start >= len(s) || s[start] != opener {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
