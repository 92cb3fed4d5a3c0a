// Package goldie wraps the goldie golden file library with the fixture
// conventions used across this repository: fixtures live in a fixtures
// directory next to the test and carry the .golden suffix.
package goldie

import (
	"testing"

	g "github.com/sebdah/goldie/v2"
)

func New(t *testing.T) *g.Goldie {
	return g.New(t, g.WithFixtureDir("fixtures"))
}

func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()
	New(t).Assert(t, name, actual)
}

func Update(t *testing.T, name string, actual []byte) {
	t.Helper()
	_ = New(t).Update(t, name, actual)
}
