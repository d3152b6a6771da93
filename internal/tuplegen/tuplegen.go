package tuplegeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/tuplegen/internal/codefmt"
	"github.com/sublee/tuplegen/internal/tuplegen/ctor"
	"github.com/sublee/tuplegen/internal/tuplegen/parse"
)

// Tuplegen generates constructor code for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Tuplegen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	recs  []*parse.Record
	ctors map[*parse.Record][]*ctor.Ctor
}

// New creates a new [Tuplegen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Tuplegen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	// Names declared by a previous tuplegen run must not count as taken.
	// Otherwise regenerating over an existing output file would number every
	// constructor anew on each run.
	ns := codefmt.NewNS(pkg.Types.Scope())
	for _, file := range pkg.Syntax {
		if !generatedByTuplegen(file) {
			continue
		}
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil {
				ns.Release(fn.Name.Name)
			}
		}
	}

	var buf bytes.Buffer
	return &Tuplegen{
		p:   parser,
		ns:  ns,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// generatedByTuplegen reports whether the file came from a previous tuplegen
// run, going by the standard generated-code header. Files generated by other
// tools keep their names reserved.
func generatedByTuplegen(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			return false
		}
		for _, comment := range group.List {
			if strings.HasPrefix(comment.Text, "// Code generated by github.com/sublee/tuplegen") {
				return true
			}
		}
	}
	return false
}

// Build prepares code generation by parsing records and planning their
// constructors. All potential errors are returned by this method. It must be
// called before [Generate].
func (tg *Tuplegen) Build() error {
	recs, errs := tg.p.ParseRecords()
	tg.recs = recs

	tg.ctors = make(map[*parse.Record][]*ctor.Ctor)
	for _, rec := range recs {
		ctors, err := ctor.Build(rec, tg.ns)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		tg.ctors[rec] = ctors
	}
	return errs
}

// Generate generates constructor code for the package. It must be called
// after [Build] succeeds. When the package has no records, it returns nil so
// that the caller can skip the package.
func (tg *Tuplegen) Generate() []byte {
	if len(tg.recs) == 0 {
		return nil
	}

	tg.writeCtorCode()
	return tg.frameCode()
}

// writeCtorCode writes constructor declarations in record order, grouped by
// the source file the record appears in.
func (tg *Tuplegen) writeCtorCode() {
	fset := tg.p.Pkg().Fset
	lastFile := ""

	for _, rec := range tg.recs {
		name := filepath.Base(fset.File(rec.Pos()).Name())
		if name != lastFile {
			tg.w.Printf("// %s:\n\n", name)
			lastFile = name
		}

		for _, c := range tg.ctors[rec] {
			c.WriteDefineCode(tg.w)
			tg.w.Printf("\n")
		}
	}
}

// frameCode frames the constructor code with the file header, the package
// clause, and the import declaration collected by the writer. Imports are
// sorted by path so repeated runs produce identical bytes.
func (tg *Tuplegen) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/tuplegen%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "\npackage %s\n", tg.p.Pkg().Name)

	if len(tg.w.Imports()) != 0 {
		type impLine struct {
			name string
			imp  codefmt.Import
		}
		lines := make([]impLine, 0, len(tg.w.Imports()))
		for name, imp := range tg.w.Imports() {
			lines = append(lines, impLine{name, imp})
		}
		slices.SortFunc(lines, func(a, b impLine) int {
			return strings.Compare(a.imp.Path(), b.imp.Path())
		})

		fmt.Fprintf(&buf, "\nimport (\n")
		for _, l := range lines {
			if l.imp.HasAlias {
				fmt.Fprintf(&buf, "\t%s %q\n", l.name, l.imp.Path())
			} else {
				fmt.Fprintf(&buf, "\t%q\n", l.imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	fmt.Fprintf(&buf, "\n")
	_, _ = io.Copy(&buf, tg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
