package dumpsql

import "strings"

// fragment is one delimiter-separated unit of input ahead of
// classification.
type fragment struct {
	// text is the trimmed statement text.
	text string
	// lineNumber is the 1-based line on which the fragment begins.
	lineNumber int
}

// splitStatements divides decoded script text into statement fragments
// on the literal delimiter. Whitespace-only fragments are discarded.
// Each surviving fragment carries the line number at which it starts,
// accumulated from newline counts across prior fragments and the
// delimiters between them.
//
// The split is literal: a delimiter character inside a quoted string
// literal incorrectly splits the statement. Callers working with such
// dumps should configure a custom delimiter.
func splitStatements(text, delimiter string) []fragment {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	parts := strings.Split(stripComments(text), delimiter)
	fragments := make([]fragment, 0, len(parts))
	delimiterLines := strings.Count(delimiter, "\n")

	line := 1
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			// The statement starts after any leading blank lines of
			// its own fragment.
			leading := len(part) - len(strings.TrimLeft(part, " \t\r\n"))
			fragments = append(fragments, fragment{
				text:       trimmed,
				lineNumber: line + strings.Count(part[:leading], "\n"),
			})
		}
		line += strings.Count(part, "\n") + delimiterLines
	}
	return fragments
}

// stripComments blanks out full-line "--" comments and block comments
// opening at the start of a line, preserving newlines so that line
// numbers stay stable. Inline comments are left alone: "--" inside an
// INSERT literal must not be touched.
func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	inBlock := false

	for i, line := range lines {
		if inBlock {
			if idx := strings.Index(line, "*/"); idx >= 0 {
				lines[i] = line[idx+2:]
				inBlock = false
			} else {
				lines[i] = ""
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "--"):
			lines[i] = ""
		case strings.HasPrefix(trimmed, "/*"):
			if idx := strings.Index(trimmed, "*/"); idx >= 0 {
				lines[i] = trimmed[idx+2:]
			} else {
				lines[i] = ""
				inBlock = true
			}
		}
	}
	return strings.Join(lines, "\n")
}
