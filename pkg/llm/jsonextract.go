package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON is returned when a completion contains no parseable JSON value.
var ErrNoJSON = errors.New("no balanced JSON value in completion")

// ExtractJSON pulls the first balanced JSON object or array out of a raw
// completion. Code-fence markers are stripped first; the candidate must
// parse strictly or the extraction fails.
func ExtractJSON(s string) (string, error) {
	s = stripFences(s)

	start := -1
	var opener, closer byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' || s[i] == '[' {
			start = i
			opener = s[i]
			closer = matchingClose(opener)
			break
		}
	}
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return "", ErrNoJSON
				}
				return candidate, nil
			}
		}
	}
	return "", ErrNoJSON
}

func matchingClose(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ']'
}

// stripFences removes markdown code-fence lines such as ```json and ```.
func stripFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
