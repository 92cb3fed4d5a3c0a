package lexer

import (
	"bytes"
	"strings"
)

// dedentBlockString implements https://spec.graphql.org/October2021/#BlockStringValue()
// It strips the common indent shared by all lines after the first and drops
// leading and trailing whitespace-only lines. The escaped triple quote is
// resolved afterwards.
func dedentBlockString(raw []byte) string {
	lines := splitBytesIntoLines(raw)

	// find the common indent size (-1 means no common indent)
	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		length := len(line)
		indent := leadingWhitespaceCount(line)
		if indent < length {
			if commonIndent == -1 || indent < commonIndent {
				commonIndent = indent
			}
		}
	}

	// remove the common indent from each line but the first
	if commonIndent != -1 {
		for i := 1; i < len(lines); i++ {
			indent := commonIndent
			if len(lines[i]) < indent {
				indent = len(lines[i])
			}
			lines[i] = lines[i][indent:]
		}
	}

	// remove leading whitespace-only lines
	for len(lines) > 0 && leadingWhitespaceCount(lines[0]) == len(lines[0]) {
		lines = lines[1:]
	}

	// remove trailing whitespace-only lines
	for len(lines) > 0 && leadingWhitespaceCount(lines[len(lines)-1]) == len(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	content := string(bytes.Join(lines, []byte{'\n'}))
	return strings.ReplaceAll(content, `\"""`, `"""`)
}

// splitBytesIntoLines splits on the line terminators defined by
// https://spec.graphql.org/October2021/#sec-Line-Terminators (\n, \r, \r\n).
func splitBytesIntoLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	length := len(data)

	for i := 0; i < length; i++ {
		switch c := data[i]; c {
		case '\n', '\r':
			if start <= i {
				lines = append(lines, data[start:i])
			}
			if c == '\r' && i+1 < length && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}

	if start <= length {
		lines = append(lines, data[start:])
	}

	return lines
}

// leadingWhitespaceCount counts leading spaces and tabs.
func leadingWhitespaceCount(line []byte) int {
	count := 0
	for _, c := range line {
		if c != ' ' && c != '\t' {
			break
		}
		count++
	}
	return count
}
