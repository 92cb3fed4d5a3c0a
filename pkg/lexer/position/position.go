// Package position carries line/column information through tokens into the AST.
// Positions are diagnostic metadata only; semantic equality ignores them.
package position

import "fmt"

type Position struct {
	LineStart uint32
	CharStart uint32
	LineEnd   uint32
	CharEnd   uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", p.LineStart, p.CharStart, p.LineEnd, p.CharEnd)
}

func (p *Position) Reset() {
	p.LineStart = 1
	p.CharStart = 1
	p.LineEnd = 1
	p.CharEnd = 1
}

func (p *Position) MergeStartIntoStart(other Position) {
	p.LineStart = other.LineStart
	p.CharStart = other.CharStart
}

func (p *Position) MergeEndIntoEnd(other Position) {
	p.LineEnd = other.LineEnd
	p.CharEnd = other.CharEnd
}

func (p Position) IsSet() bool {
	return p.LineStart != 0 || p.CharStart != 0 || p.LineEnd != 0 || p.CharEnd != 0
}
