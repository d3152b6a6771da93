package tuplegen_test

import (
	"bytes"
	"errors"
	"fmt"
	"go/build"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	tuplegeninternal "github.com/sublee/tuplegen/internal/tuplegen"
	"github.com/sublee/tuplegen/pkg/tuplegenanalysis"
)

// logReproduce tells how to rerun a failed subtest outside the harness.
func logReproduce(t *testing.T, cmd string) {
	t.Helper()
	if t.Failed() {
		t.Logf("\n\tReproduce:\t%s", cmd)
	}
}

// TestAnalysis tests parsing and building errors using the Go analysis
// protocol. In this test, tuplegen errors will be reported as analysis
// errors. "// want `REGEXP`" comments in the fixture source files are used to
// check for expected analysis errors.
//
// Every directory under testdata/analysis is one subtest:
//
//	testdata/
//	└── analysis/
//	    ├── DupFieldType/
//	    │   └── *.go // with want comments
//	    └── Ok/
//	        └── *.go // with want comments
func TestAnalysis(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/analysis"))
	require.NoError(t, err)

	for _, ent := range ents {
		if !ent.IsDir() {
			continue
		}

		dir := ent.Name()
		t.Run(dir, func(t *testing.T) {
			t.Parallel()
			defer logReproduce(t, "go run ./cmd/tuplegen ./testdata/analysis/"+dir)

			analysistest.Run(t, "", tuplegenanalysis.Analyzer, "./testdata/analysis/"+dir)
		})
	}
}

// TestPrograms tests programs in the testdata directory. Each program is a
// self-contained module, so no replace directives or library copies are
// needed to run it.
//
// Every directory under testdata/program is one subtest:
//
//	testdata/
//	└── program/
//	    ├── Permute3/
//	    │   ├── main/
//	    │   │   └── main.go
//	    │   └── want/
//	    │       └── program_output.txt
//	    └── DupFieldType/
//	        ├── main/
//	        │   └── main.go
//	        └── want/
//	            └── tuplegen_error.txt
func TestPrograms(t *testing.T) {
	ents, err := os.ReadDir(filepath.FromSlash("testdata/program"))
	require.NoError(t, err)

	for _, ent := range ents {
		name := ent.Name()
		if !ent.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}

		test, err := newProgramTest(name)
		if err != nil {
			t.Error(err)
			continue
		}

		t.Run(test.name, test.Test())
	}
}

// programTest is a test case for a program. It executes tuplegen for the
// program and runs the program with generated code to check the output.
type programTest struct {
	name  string
	files map[string][]byte
	want  struct {
		ProgramOutput string
		TuplegenError string
	}
}

func (test *programTest) PkgPath() string {
	return fmt.Sprintf("example.com/%s", test.name)
}

func (test *programTest) ProgramPath() string {
	return fmt.Sprintf("%s/main", test.PkgPath())
}

// newProgramTest creates a new program test case.
func newProgramTest(name string) (*programTest, error) {
	root := filepath.Join(filepath.FromSlash("testdata/program"), name)
	test := programTest{
		name:  name,
		files: make(map[string][]byte),
	}

	// want
	readWant := func(file string) string {
		b, _ := os.ReadFile(filepath.Join(root, "want", file))
		return string(bytes.TrimSpace(b))
	}
	test.want.ProgramOutput = readWant("program_output.txt")
	test.want.TuplegenError = readWant("tuplegen_error.txt")

	if test.want.ProgramOutput == "" && test.want.TuplegenError == "" {
		return nil, fmt.Errorf("load test case %s: does not want anything", name)
	}

	// files
	if err := fs.WalkDir(os.DirFS(root), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Bubble up I/O errors
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(d.Name()) != ".go" {
			// Skip non-Go files
			return nil
		}
		if d.Name() == "tuplegen_gen.go" {
			// Skip generated files, they might be existed for debugging
			// purposes.
			return nil
		}

		goCode, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return err
		}
		test.files[p] = goCode
		return nil
	}); err != nil {
		return nil, fmt.Errorf("load test case %s: %v", name, err)
	}

	return &test, nil
}

// materialize copies the program code into the given directory as a
// standalone module.
func (test *programTest) materialize(dir string) error {
	for name, content := range test.files {
		dst := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
			return fmt.Errorf("mkdir %s: %w", name, err)
		}
		if err := os.WriteFile(dst, content, 0o666); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	gomod := fmt.Sprintf("module %s\n\ngo 1.25.0\n", test.PkgPath())
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o666); err != nil {
		return fmt.Errorf("write %s/go.mod: %w", test.PkgPath(), err)
	}

	return nil
}

// Test returns a test function for the program test. It runs tuplegen for the
// program and then checks its error or output messages.
func (test *programTest) Test() func(*testing.T) {
	return func(t *testing.T) {
		t.Parallel()
		defer logReproduce(t, "go run ./cmd/tuplegen ./testdata/program/"+test.name+"/...")

		// Materialize in a temporary directory
		wd := t.TempDir()
		require.NoError(t, test.materialize(wd), "Materialization failed")

		// Run tuplegen
		generated, tuplegenErr := tuplegeninternal.Main(t.Context(), wd, os.Environ(), "", false, "tuplegen_gen.go", []string{"./..."})

		// Check for the tuplegen error
		if tuplegenErr != nil {
			msg := relPathInString(tuplegenErr.Error(), wd)
			if test.want.TuplegenError == "" {
				require.NoError(t, errors.New(msg), "tuplegen exited with errors unexpectedly")
			}
			assert.Equal(t, normalizeWhitespace(test.want.TuplegenError), normalizeWhitespace(msg))
			return
		}

		if test.want.TuplegenError != "" {
			require.Error(t, tuplegenErr, "tuplegen should have exited with an error")
		}

		// Write generated files
		for name, code := range generated.All() {
			require.NoError(t, os.WriteFile(filepath.Join(wd, name), code, 0o666), "Failed to write a generated file")
		}

		// Run the program with the generated code in place
		goBin := filepath.Join(build.Default.GOROOT, "bin", "go")
		cmd := exec.CommandContext(t.Context(), goBin, "run", test.ProgramPath())
		cmd.Dir = wd
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))

		if test.want.ProgramOutput != "" {
			assert.Equal(t, test.want.ProgramOutput, strings.TrimSpace(string(out)))
		}
	}
}

// relPathInString strips the temporary working directory prefix from paths
// in the given string so error messages match the stable paths in want files.
func relPathInString(s, wd string) string {
	realWD, wdErr := os.Getwd()
	rel, relErr := filepath.Rel(realWD, wd)
	if wdErr != nil || relErr != nil {
		return s
	}

	s = strings.ReplaceAll(s, rel+"/", "")
	return strings.ReplaceAll(s, rel, "")
}

// normalizeWhitespace normalizes whitespace in the given string for
// consistent comparison regardless of whitespace style.
func normalizeWhitespace(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\t", "    ")
}
