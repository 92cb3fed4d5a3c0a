package astprinter

import (
	"strings"

	"github.com/jensneuse/graphql-frontend/pkg/lexer/literal"
)

// printBlockString renders content as a block string whose indentation
// removal on a later parse yields the identical content again. Every content
// line is written at the surrounding indentation level; the parse side strips
// that shared indentation back off. A leading line break is forced when all
// lines after the first start with whitespace, otherwise the first line would
// shift the shared indentation and reparse differently. A trailing line break
// is forced when the content ends in a quote or backslash that would
// otherwise merge into the closing triple quote.
func (p *printer) printBlockString(content string) {
	escaped := strings.ReplaceAll(content, `"""`, `\"""`)
	lines := strings.Split(escaped, "\n")

	isSingleLine := len(lines) == 1
	forceLeadingLinebreak := len(lines) > 1 && restIsEmptyOrIndented(lines[1:])

	hasTrailingTripleQuote := strings.HasSuffix(escaped, `\"""`)
	hasTrailingQuote := strings.HasSuffix(content, `"`) && !hasTrailingTripleQuote
	hasTrailingBackslash := strings.HasSuffix(content, `\`)
	forceTrailingLinebreak := hasTrailingQuote || hasTrailingBackslash

	printAsMultipleLines := !isSingleLine ||
		len(content) > 70 ||
		forceTrailingLinebreak ||
		forceLeadingLinebreak ||
		hasTrailingTripleQuote

	startsWithWhitespace := len(content) != 0 && (content[0] == ' ' || content[0] == '\t')
	skipLeadingLinebreak := isSingleLine && startsWithWhitespace

	p.write(literal.BLOCKQUOTE)
	if (printAsMultipleLines && !skipLeadingLinebreak) || forceLeadingLinebreak {
		p.writeLinebreak()
		if len(lines) != 0 && lines[0] != "" {
			p.writeIndent()
		}
	}
	for i, line := range lines {
		if i != 0 {
			p.writeLinebreak()
			if line != "" {
				p.writeIndent()
			}
		}
		p.writeString(line)
	}
	if printAsMultipleLines || forceTrailingLinebreak {
		p.writeLinebreak()
		p.writeIndent()
	}
	p.write(literal.BLOCKQUOTE)
}

// blockStringRoundTrips reports whether content printed as a block string
// parses back to the identical content. The parse side dedent drops leading
// and trailing blank lines, so content whose first or last line is empty or
// whitespace only cannot use the block form.
func blockStringRoundTrips(content string) bool {
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return false
	}
	return !isBlankLine(lines[0]) && !isBlankLine(lines[len(lines)-1])
}

func isBlankLine(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}

func restIsEmptyOrIndented(lines []string) bool {
	for _, line := range lines {
		if line == "" {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			return false
		}
	}
	return true
}
