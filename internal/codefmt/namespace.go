package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS tracks the names claimed inside one declaration space.
type NS map[string]struct{}

// NewNS creates a namespace with every name of the given scope already
// reserved.
func NewNS(scope *types.Scope) NS {
	ns := make(NS)
	for _, name := range scope.Names() {
		ns.Reserve(name)
	}
	return ns
}

// Reserve marks a name as used. It returns false when the name was taken
// before.
func (ns NS) Reserve(name string) bool {
	if _, taken := ns[name]; taken {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Release removes a name from the namespace so that it can be chosen again.
func (ns NS) Release(name string) {
	delete(ns, name)
}

// Name normalizes the given name and reserves it. When the name is taken
// already, the first free numbered alternative from [DisambiguateName] is
// reserved instead. Keywords pass through without reservation.
//
// Panics if the name is empty.
func (ns NS) Name(name string) string {
	name = NormalizeName(name)
	if ns == nil || token.Lookup(name).IsKeyword() {
		return name
	}

	for name := range DisambiguateName(name) {
		if ns.Reserve(name) {
			return name
		}
	}
	panic("unreachable")
}

// NormalizeName drops characters not allowed in a Go identifier and joins the
// surviving chunks in camel case. Identifier characters follow the language
// spec, so unicode letters such as CJK field names pass through unchanged.
func NormalizeName(name string) string {
	if name == "" {
		panic("empty name")
	}

	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})

	for i, chunk := range chunks {
		if i == 0 {
			continue
		}
		chunks[i] = cases.Title(language.English).String(chunk)
	}
	return strings.Join(chunks, "")
}

// DisambiguateName yields the name itself and then numbered alternatives.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	// "answer42_2" reads better than "answer422", so a name ending in a
	// digit takes an underscore before its number.
	sep := ""
	if last := name[len(name)-1]; last >= '0' && last <= '9' {
		sep = "_"
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}
