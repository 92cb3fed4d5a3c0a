package ast

import "strconv"

type PathKind int

const (
	PathKindUnknown PathKind = iota
	PathKindFieldName
	PathKindArrayIndex
)

// PathItem is one step of a dotted path into a document tree, either a field
// name or an index into a sequence.
type PathItem struct {
	Kind       PathKind
	ArrayIndex int
	FieldName  string
}

type Path []PathItem

// WithFieldName returns a copy of p extended by a field name step.
func (p Path) WithFieldName(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, PathItem{Kind: PathKindFieldName, FieldName: name})
}

// WithIndex returns a copy of p extended by an index step.
func (p Path) WithIndex(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, PathItem{Kind: PathKindArrayIndex, ArrayIndex: i})
}

func (p Path) Equals(another Path) bool {
	if len(p) != len(another) {
		return false
	}
	for i := range p {
		if p[i].Kind != another[i].Kind {
			return false
		}
		if p[i].Kind == PathKindArrayIndex {
			if p[i].ArrayIndex != another[i].ArrayIndex {
				return false
			}
		} else if p[i].FieldName != another[i].FieldName {
			return false
		}
	}
	return true
}

func (p Path) DotDelimitedString() string {
	out := ""
	for i := range p {
		if i != 0 {
			out += "."
		}
		switch p[i].Kind {
		case PathKindArrayIndex:
			out += strconv.Itoa(p[i].ArrayIndex)
		case PathKindFieldName:
			out += p[i].FieldName
		}
	}
	return out
}

func (p Path) String() string {
	return p.DotDelimitedString()
}
