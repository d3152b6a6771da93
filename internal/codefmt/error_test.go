package codefmt_test

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/tuplegen/internal/codefmt"
)

// pkger carries a file set with one registered file, so positioned errors
// have a position to render.
type pkger struct{}

func (pkger) Pkg() *packages.Package {
	var pkg packages.Package
	pkg.Fset = token.NewFileSet()
	pkg.Fset.AddFile("fixture.go", -1, 100).AddLine(10)
	return &pkg
}

type poser struct{ pos int }

func (p poser) Pos() token.Pos { return token.Pos(p.pos) }

type spanner struct{ pos, end int }

func (s spanner) Pos() token.Pos { return token.Pos(s.pos) }
func (s spanner) End() token.Pos { return token.Pos(s.end) }

func TestErrorfNilNil(t *testing.T) {
	err := codefmt.Errorf(nil, nil, "plain error")
	assert.Equal(t, "plain error", err.Error())
}

func TestErrorfPos(t *testing.T) {
	err := codefmt.Errorf(pkger{}, poser{1}, "error")
	assert.Equal(t, "fixture.go:1:1: error", err.Error())
}

func TestErrorfEnd(t *testing.T) {
	err := codefmt.Errorf(pkger{}, spanner{1, 5}, "error")

	var cerr *codefmt.CodeError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, token.Pos(1), cerr.Pos())
	assert.Equal(t, token.Pos(5), cerr.End())
}

func TestErrorfW(t *testing.T) {
	assert.Panics(t, func() {
		_ = codefmt.Errorf(pkger{}, poser{1}, "wrap: %w", assert.AnError)
	})
}
